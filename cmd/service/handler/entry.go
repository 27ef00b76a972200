package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type ListEntriesRequest struct {
	SectionID  int64  `form:"section_id"`
	SubtopicID int64  `form:"subtopic_id"`
	TagID      int64  `form:"tag_id"`
	Mood       string `form:"mood"`
	Search     string `form:"search"`
	Page       uint64 `form:"page"`
	Limit      uint64 `form:"limit"`
}

type ListEntriesResponse struct {
	Entries    []*types.EntryDetail `json:"entries"`
	Pagination types.Pagination     `json:"pagination"`
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	var (
		err error
		req ListEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	opts := types.ListEntryOptions{
		SectionID:  req.SectionID,
		SubtopicID: req.SubtopicID,
		TagID:      req.TagID,
		Mood:       req.Mood,
		Search:     req.Search,
	}
	list, pagination, err := v1.NewEntryLogic(c, s.Core).ListEntries(opts, req.Page, req.Limit)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListEntriesResponse{
		Entries:    list,
		Pagination: pagination,
	})
}

func (s *HttpSrv) GetEntry(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	detail, err := v1.NewEntryLogic(c, s.Core).GetEntry(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, detail)
}

type CreateEntryRequest struct {
	SectionID  int64   `json:"section_id" binding:"required"`
	SubtopicID *int64  `json:"subtopic_id"`
	Title      string  `json:"title"`
	Content    string  `json:"content" binding:"required"`
	Mood       string  `json:"mood"`
	Intensity  *int    `json:"intensity"`
	IsDraft    bool    `json:"is_draft"`
	TagIDs     []int64 `json:"tag_ids"`
}

func (req CreateEntryRequest) toArgs() types.CreateEntryArgs {
	return types.CreateEntryArgs{
		SectionID:  req.SectionID,
		SubtopicID: req.SubtopicID,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		Intensity:  req.Intensity,
		IsDraft:    req.IsDraft,
		TagIDs:     req.TagIDs,
	}
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	detail, err := v1.NewEntryLogic(c, s.Core).CreateEntry(req.toArgs())
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, detail)
}

func (s *HttpSrv) UpdateEntry(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req CreateEntryRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	detail, err := v1.NewEntryLogic(c, s.Core).UpdateEntry(id, req.toArgs())
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, detail)
}

func (s *HttpSrv) DeleteEntry(c *gin.Context) {
	id, err := utils.ParseParamID(c, "id")
	if err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewEntryLogic(c, s.Core).DeleteEntry(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
