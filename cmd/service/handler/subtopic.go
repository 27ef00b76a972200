package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type CreateSubtopicRequest struct {
	SectionID   int64  `json:"section_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *HttpSrv) CreateSubtopic(c *gin.Context) {
	var (
		err error
		req CreateSubtopicRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	subtopic, err := v1.NewSubtopicLogic(c, s.Core).CreateSubtopic(req.SectionID, req.Name, req.Description)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, subtopic)
}

type UpdateSubtopicRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *HttpSrv) UpdateSubtopic(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req UpdateSubtopicRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	subtopic, err := v1.NewSubtopicLogic(c, s.Core).UpdateSubtopic(id, req.Name, req.Description)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, subtopic)
}

func (s *HttpSrv) DeleteSubtopic(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewSubtopicLogic(c, s.Core).DeleteSubtopic(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
