package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

func (s *HttpSrv) Export(c *gin.Context) {
	data, err := v1.NewTransferLogic(c, s.Core).Export()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

type ImportRequest struct {
	Data types.ExportData `json:"data" binding:"required"`
}

func (s *HttpSrv) Import(c *gin.Context) {
	var (
		err error
		req ImportRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewTransferLogic(c, s.Core).Import(req.Data)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}
