package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/types"
)

type ListSectionsResponse struct {
	List []types.SectionDetail `json:"list"`
}

func (s *HttpSrv) ListSections(c *gin.Context) {
	list, err := v1.NewSectionLogic(c, s.Core).ListSections()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListSectionsResponse{
		List: list,
	})
}
