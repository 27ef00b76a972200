package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
)

func (s *HttpSrv) StatsOverview(c *gin.Context) {
	overview, err := v1.NewStatsLogic(c, s.Core).Overview()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, overview)
}
