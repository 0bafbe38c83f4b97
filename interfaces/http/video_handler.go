package http

import (
	"errors"
	"net/http"
	"strconv"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/persistence"
	"clipstream/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	ListVideos(ctx *gin.Context)
	GetVideo(ctx *gin.Context)
	CreateVideo(ctx *gin.Context)
	DeleteVideo(ctx *gin.Context)
	RecordView(ctx *gin.Context)
	Like(ctx *gin.Context)
	Unlike(ctx *gin.Context)
	ListComments(ctx *gin.Context)
	AddComment(ctx *gin.Context)
	DeleteComment(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// ListVideos handles GET /api/videos?q=&category=&sort=
func (h *VideoHandler) ListVideos(ctx *gin.Context) {
	var req dto.VideoListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	views, err := h.videoUsecase.Feed(ctx.Request.Context(), usecase.RankOptions{
		Query:    req.Q,
		Category: req.Category,
		Sort:     usecase.SortMode(req.Sort),
	}, ctx.GetString("user_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSortMode) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": views})
}

func (h *VideoHandler) GetVideo(ctx *gin.Context) {
	view, err := h.videoUsecase.GetVideo(ctx.Request.Context(), ctx.Param("videoId"), ctx.GetString("user_id"))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": view})
}

func (h *VideoHandler) CreateVideo(ctx *gin.Context) {
	var req dto.VideoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.videoUsecase.CreateVideo(ctx.Request.Context(), req, ctx.GetString("user_id"))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create video"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": view})
}

func (h *VideoHandler) DeleteVideo(ctx *gin.Context) {
	err := h.videoUsecase.DeleteVideo(ctx.Request.Context(), ctx.Param("videoId"), ctx.GetString("user_id"))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *VideoHandler) RecordView(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	if err := h.videoUsecase.RecordView(ctx.Request.Context(), videoID, ctx.GetString("user_id")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"video_id": videoID, "viewed": true})
}

func (h *VideoHandler) Like(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	if err := h.videoUsecase.Like(ctx.Request.Context(), videoID, ctx.GetString("user_id")); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"video_id": videoID, "liked": true})
}

func (h *VideoHandler) Unlike(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	if err := h.videoUsecase.Unlike(ctx.Request.Context(), videoID, ctx.GetString("user_id")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"video_id": videoID, "liked": false})
}

func (h *VideoHandler) ListComments(ctx *gin.Context) {
	comments, err := h.videoUsecase.ListComments(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": comments})
}

func (h *VideoHandler) AddComment(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.videoUsecase.AddComment(ctx.Request.Context(), ctx.Param("videoId"), ctx.GetString("user_id"), req.Body)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": comment})
}

func (h *VideoHandler) DeleteComment(ctx *gin.Context) {
	commentID, err := strconv.ParseInt(ctx.Param("commentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	if err := h.videoUsecase.DeleteComment(ctx.Request.Context(), commentID, ctx.GetString("user_id")); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}
