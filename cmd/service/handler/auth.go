package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID int64 `json:"id"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	token, user, err := v1.NewAuthLogic(c, s.Core).Login(req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, LoginResponse{
		Token: token,
		User:  LoginUser{ID: user.ID},
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (s *HttpSrv) ChangePassword(c *gin.Context) {
	var (
		err error
		req ChangePasswordRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAuthLogic(c, s.Core).ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
