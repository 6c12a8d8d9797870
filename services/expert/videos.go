package expert

import (
	"context"
	"fmt"

	"expertly/models"
	"expertly/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddVideo attaches an intro video to the expert's profile. A local file path
// is uploaded to Cloudinary; alternatively a ready URL (e.g. YouTube) is
// stored as-is.
func (s *DefaultExpertService) AddVideo(ctx context.Context, expertID, localFilePath, url string) (*models.ExpertVideo, error) {
	video := &models.ExpertVideo{
		ID:       uuid.New().String(),
		ExpertID: expertID,
	}

	switch {
	case localFilePath != "":
		if s.Cloudinary == nil {
			return nil, fmt.Errorf("video uploads are not configured")
		}
		result, err := s.Cloudinary.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
			Folder:       "expert_videos/" + expertID,
			ResourceType: "video",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload video: %w", err)
		}
		video.URL = result.SecureURL
		video.PublicID = result.PublicID
	case url != "":
		video.URL = url
	default:
		return nil, fmt.Errorf("either a video file or a video url is required")
	}

	if err := s.Videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to store video: %w", err)
	}
	return video, nil
}

// DeleteVideo removes one of the expert's videos. When the video is backed by
// a Cloudinary asset the asset is destroyed too; a destroy failure is logged
// but does not keep the record alive.
func (s *DefaultExpertService) DeleteVideo(ctx context.Context, videoID, expertID string) error {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}
	if video.ExpertID != expertID {
		return fmt.Errorf("video %s does not belong to expert %s", videoID, expertID)
	}

	if video.PublicID != "" && s.Cloudinary != nil {
		_, err := s.Cloudinary.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID:     video.PublicID,
			ResourceType: "video",
		})
		if err != nil {
			utils.GetLogger().Warn("Failed to destroy video asset",
				zap.String("publicID", video.PublicID), zap.Error(err))
		}
	}

	if err := s.Videos.Delete(ctx, videoID, expertID); err != nil {
		return fmt.Errorf("failed to delete video %s: %w", videoID, err)
	}
	return nil
}
