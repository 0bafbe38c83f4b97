package http

import (
	"errors"
	"net/http"
	"time"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/persistence"
	"clipstream/infrastructure/realtime"
	"clipstream/usecase"

	"github.com/gin-gonic/gin"
)

type ICampaignHandler interface {
	ListCampaigns(ctx *gin.Context)
	GetCampaign(ctx *gin.Context)
	CreateCampaign(ctx *gin.Context)
	AttachVideo(ctx *gin.Context)
	Leaderboard(ctx *gin.Context)
	UpNext(ctx *gin.Context)
	Announcements(ctx *gin.Context)
	Rotate(ctx *gin.Context)
}

type CampaignHandler struct {
	campaignUsecase usecase.ICampaignUsecase
	rotator         *realtime.Rotator
}

func NewCampaignHandler(campaignUsecase usecase.ICampaignUsecase, rotator *realtime.Rotator) ICampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase, rotator: rotator}
}

func (h *CampaignHandler) ListCampaigns(ctx *gin.Context) {
	campaigns, err := h.campaignUsecase.ListCampaigns(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": campaigns})
}

func (h *CampaignHandler) GetCampaign(ctx *gin.Context) {
	campaign, err := h.campaignUsecase.GetCampaign(ctx.Request.Context(), ctx.Param("campaignId"))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": campaign})
}

func (h *CampaignHandler) CreateCampaign(ctx *gin.Context) {
	var req dto.CampaignCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign, err := h.campaignUsecase.CreateCampaign(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateRange) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while creating campaign")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create campaign"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": campaign})
}

func (h *CampaignHandler) AttachVideo(ctx *gin.Context) {
	err := h.campaignUsecase.AttachVideo(ctx.Request.Context(), ctx.Param("campaignId"), ctx.Param("videoId"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"attached": true})
}

// Leaderboard handles GET /api/campaigns/:campaignId/leaderboard?q=&category=&sort=
func (h *CampaignHandler) Leaderboard(ctx *gin.Context) {
	var req dto.VideoListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	views, err := h.campaignUsecase.Leaderboard(ctx.Request.Context(), ctx.Param("campaignId"), usecase.RankOptions{
		Query:    req.Q,
		Category: req.Category,
		Sort:     usecase.SortMode(req.Sort),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSortMode):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, persistence.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": views})
}

func (h *CampaignHandler) UpNext(ctx *gin.Context) {
	views, err := h.campaignUsecase.UpNext(ctx.Request.Context(), ctx.Param("campaignId"))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": views})
}

func (h *CampaignHandler) Announcements(ctx *gin.Context) {
	entries, err := h.campaignUsecase.Announcements(ctx.Request.Context(), time.Now().UTC())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": entries})
}

// Rotate handles POST /api/campaigns/rotation?op=next|prev&index=N. Manual
// navigation restarts the rotation interval.
func (h *CampaignHandler) Rotate(ctx *gin.Context) {
	var index int
	switch op := ctx.Query("op"); op {
	case "next", "":
		index = h.rotator.Next()
	case "prev":
		index = h.rotator.Prev()
	case "jump":
		var req struct {
			Index int `form:"index"`
		}
		if err := ctx.ShouldBindQuery(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		index = h.rotator.Jump(req.Index)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown op: " + op})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"index": index})
}
