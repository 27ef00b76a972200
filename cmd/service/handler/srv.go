package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/reflectdiary/diary-api/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
