package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type ListPromptsResponse struct {
	List []types.Prompt `json:"list"`
}

func (s *HttpSrv) ListPrompts(c *gin.Context) {
	list, err := v1.NewPromptLogic(c, s.Core).ListPrompts()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListPromptsResponse{
		List: list,
	})
}

type SaveAnswerRequest struct {
	PromptID int64  `json:"prompt_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (s *HttpSrv) SaveEntryAnswer(c *gin.Context) {
	entryID, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req SaveAnswerRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	answer, err := v1.NewPromptLogic(c, s.Core).SaveAnswer(entryID, req.PromptID, req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, answer)
}
