package http

import (
	"errors"
	"net/http"

	"clipstream/usecase"

	"github.com/gin-gonic/gin"
)

type IDiscoveryHandler interface {
	TopCreators(ctx *gin.Context)
	TrendingHashtags(ctx *gin.Context)
	Follow(ctx *gin.Context)
	Unfollow(ctx *gin.Context)
	FollowerCount(ctx *gin.Context)
}

type DiscoveryHandler struct {
	discoveryUsecase usecase.IDiscoveryUsecase
	socialUsecase    usecase.ISocialUsecase
}

func NewDiscoveryHandler(discoveryUsecase usecase.IDiscoveryUsecase, socialUsecase usecase.ISocialUsecase) IDiscoveryHandler {
	return &DiscoveryHandler{discoveryUsecase: discoveryUsecase, socialUsecase: socialUsecase}
}

// TopCreators handles GET /api/discovery/top-creators. Failures upstream
// degrade to an empty listing, so this never returns an error status.
func (h *DiscoveryHandler) TopCreators(ctx *gin.Context) {
	creators := h.discoveryUsecase.TopCreators(ctx.Request.Context(), ctx.GetString("user_id"))
	ctx.JSON(http.StatusOK, gin.H{"data": creators})
}

func (h *DiscoveryHandler) TrendingHashtags(ctx *gin.Context) {
	tags := h.discoveryUsecase.TrendingHashtags(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"data": tags})
}

func (h *DiscoveryHandler) Follow(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if err := h.socialUsecase.Follow(ctx.Request.Context(), ctx.GetString("user_id"), userID); err != nil {
		if errors.Is(err, usecase.ErrSelfFollow) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user_id": userID, "following": true})
}

func (h *DiscoveryHandler) Unfollow(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if err := h.socialUsecase.Unfollow(ctx.Request.Context(), ctx.GetString("user_id"), userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user_id": userID, "following": false})
}

func (h *DiscoveryHandler) FollowerCount(ctx *gin.Context) {
	userID := ctx.Param("userId")
	count, err := h.socialUsecase.FollowerCount(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user_id": userID, "followers": count})
}
