package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type ListTagsResponse struct {
	List []types.TagDetail `json:"list"`
}

func (s *HttpSrv) ListTags(c *gin.Context) {
	list, err := v1.NewTagLogic(c, s.Core).ListTags()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListTagsResponse{
		List: list,
	})
}

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func (s *HttpSrv) CreateTag(c *gin.Context) {
	var (
		err error
		req CreateTagRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tag, err := v1.NewTagLogic(c, s.Core).CreateTag(req.Name, req.Color)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, tag)
}

func (s *HttpSrv) UpdateTag(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req CreateTagRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tag, err := v1.NewTagLogic(c, s.Core).UpdateTag(id, req.Name, req.Color)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, tag)
}

func (s *HttpSrv) DeleteTag(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewTagLogic(c, s.Core).DeleteTag(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
