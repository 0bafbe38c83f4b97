package usecase

import (
	"context"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/pubsub"

	"github.com/google/uuid"
)

type IVideoUsecase interface {
	// Feed lists the corpus through the ranker; viewerID marks Liked flags.
	Feed(ctx context.Context, opts RankOptions, viewerID string) ([]dto.VideoView, error)
	GetVideo(ctx context.Context, id, viewerID string) (*dto.VideoView, error)
	CreateVideo(ctx context.Context, req dto.VideoCreateRequest, ownerID string) (*dto.VideoView, error)
	DeleteVideo(ctx context.Context, id, ownerID string) error
	// RecordView bumps the relational counter; the event log and engagement
	// fan-out are best-effort.
	RecordView(ctx context.Context, videoID, userID string) error
	Like(ctx context.Context, videoID, userID string) error
	Unlike(ctx context.Context, videoID, userID string) error
	ListComments(ctx context.Context, videoID string) ([]model.Comment, error)
	AddComment(ctx context.Context, videoID, userID, body string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64, userID string) error
}

type videoUsecase struct {
	videoRepo repository.IVideo
	viewLog   repository.IViewEventLog
	publisher pubsub.IEngagementPublisher
}

func NewVideoUsecase(videoRepo repository.IVideo, viewLog repository.IViewEventLog, publisher pubsub.IEngagementPublisher) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo, viewLog: viewLog, publisher: publisher}
}

func (u *videoUsecase) Feed(ctx context.Context, opts RankOptions, viewerID string) ([]dto.VideoView, error) {
	videos, err := u.videoRepo.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	ranked, err := RankLeaderboard(videos, opts)
	if err != nil {
		return nil, err
	}
	return toVideoViews(ranked, viewerID), nil
}

func (u *videoUsecase) GetVideo(ctx context.Context, id, viewerID string) (*dto.VideoView, error) {
	video, err := u.videoRepo.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toVideoView(video, viewerID)
	return &view, nil
}

func (u *videoUsecase) CreateVideo(ctx context.Context, req dto.VideoCreateRequest, ownerID string) (*dto.VideoView, error) {
	video := &model.Video{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Duration:    req.Duration,
		OwnerID:     ownerID,
	}
	if err := u.videoRepo.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	view := toVideoView(video, ownerID)
	return &view, nil
}

func (u *videoUsecase) DeleteVideo(ctx context.Context, id, ownerID string) error {
	return u.videoRepo.DeleteVideo(ctx, id, ownerID)
}

func (u *videoUsecase) RecordView(ctx context.Context, videoID, userID string) error {
	if err := u.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return err
	}
	if err := u.viewLog.Record(ctx, model.ViewEvent{VideoID: videoID, UserID: userID, At: time.Now().UTC()}); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to log view event")
	}
	u.publish(ctx, "video.viewed", videoID, userID)
	return nil
}

func (u *videoUsecase) Like(ctx context.Context, videoID, userID string) error {
	if _, err := u.videoRepo.GetVideo(ctx, videoID); err != nil {
		return err
	}
	if err := u.videoRepo.AddLike(ctx, videoID, userID); err != nil {
		return err
	}
	u.publish(ctx, "video.liked", videoID, userID)
	return nil
}

func (u *videoUsecase) Unlike(ctx context.Context, videoID, userID string) error {
	if err := u.videoRepo.RemoveLike(ctx, videoID, userID); err != nil {
		return err
	}
	u.publish(ctx, "video.unliked", videoID, userID)
	return nil
}

func (u *videoUsecase) ListComments(ctx context.Context, videoID string) ([]model.Comment, error) {
	return u.videoRepo.ListComments(ctx, videoID)
}

func (u *videoUsecase) AddComment(ctx context.Context, videoID, userID, body string) (*model.Comment, error) {
	if _, err := u.videoRepo.GetVideo(ctx, videoID); err != nil {
		return nil, err
	}
	comment := &model.Comment{VideoID: videoID, UserID: userID, Body: body}
	if err := u.videoRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *videoUsecase) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	return u.videoRepo.DeleteComment(ctx, commentID, userID)
}

func (u *videoUsecase) publish(ctx context.Context, eventType, videoID, userID string) {
	err := u.publisher.Publish(ctx, pubsub.EngagementEvent{Type: eventType, VideoID: videoID, UserID: userID})
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("type", eventType).Warn("Failed to publish engagement event")
	}
}

func toVideoViews(videos []model.Video, viewerID string) []dto.VideoView {
	out := make([]dto.VideoView, 0, len(videos))
	for i := range videos {
		out = append(out, toVideoView(&videos[i], viewerID))
	}
	return out
}

func toVideoView(v *model.Video, viewerID string) dto.VideoView {
	liked := false
	if viewerID != "" {
		for _, l := range v.Likes {
			if l.UserID == viewerID {
				liked = true
				break
			}
		}
	}
	return dto.VideoView{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		Tags:         v.TagList(),
		Duration:     v.Duration,
		Views:        v.Views,
		LikeCount:    v.LikeCount(),
		CommentCount: v.CommentCount(),
		OwnerID:      v.OwnerID,
		Liked:        liked,
		CreatedAt:    v.CreatedAt,
	}
}
