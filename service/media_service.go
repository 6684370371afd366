// api/service/media_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/dao"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// IMediaService defines the interface for listing media
type IMediaService interface {
	UploadMedia(ctx context.Context, requesterID, propertyID int64, upload model.MediaUpload) ([]*model.Media, error)
	ListMedia(ctx context.Context, propertyID int64) ([]*model.Media, error)
	UpdateMedia(ctx context.Context, requesterID, mediaID int64, isMain bool) (*model.Media, error)
	DeleteMedia(ctx context.Context, requesterID, mediaID int64) error
}

type MediaService struct {
	mediaDAO       dao.IMediaDAO
	propertyDAO    dao.IPropertyDAO
	authorizer     *Authorizer
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	mediaStore     *util.MediaStore
	eventBus       *util.EventBus
	maxFiles       int
	maxFileSize    int64
}

var _ IMediaService = &MediaService{}

func NewMediaService(mediaDAO dao.IMediaDAO, propertyDAO dao.IPropertyDAO, authorizer *Authorizer, validationUtil *util.ValidationUtil, cacheService *util.CacheService, mediaStore *util.MediaStore, eventBus *util.EventBus, limits config.UploadConfiguration) *MediaService {
	service := &MediaService{
		mediaDAO:       mediaDAO,
		propertyDAO:    propertyDAO,
		authorizer:     authorizer,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		mediaStore:     mediaStore,
		eventBus:       eventBus,
		maxFiles:       limits.MaxFiles,
		maxFileSize:    limits.MaxFileSize,
	}

	eventBus.Subscribe(util.EventMediaUploaded, service.handleMediaUploaded)
	eventBus.Subscribe(util.EventMediaDeleted, service.handleMediaDeleted)

	return service
}

func (s *MediaService) handleMediaUploaded(ctx context.Context, event util.Event) error {
	created := event.Payload.([]*model.Media)
	for _, media := range created {
		logger.Info("Media stored",
			zap.Int64("mediaID", media.ID),
			zap.Int64("propertyID", media.PropertyID),
			zap.String("path", media.Path))
	}
	return nil
}

// handleMediaDeleted removes the stored file once the row is gone. A failure
// is only logged.
func (s *MediaService) handleMediaDeleted(ctx context.Context, event util.Event) error {
	media := event.Payload.(model.Media)
	if media.Path == "" {
		return nil
	}
	return s.mediaStore.Remove(media.Path)
}

// UploadMedia stores files for a listing. The checks run in this order:
// listing exists, requester may upload, form and files are acceptable. Files
// are written before the rows and removed again when the rows cannot be created.
func (s *MediaService) UploadMedia(ctx context.Context, requesterID, propertyID int64, upload model.MediaUpload) ([]*model.Media, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyDAO.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	check := s.authorizer.Guarded(principal, policyUploadMedia, propertyID)
	defer check.Record(ctx)
	if err := check.Evaluate(pdp_model.PropertyOwnedBy(property.OwnerID), nil); err != nil {
		return nil, err
	}

	isMain, err := s.validationUtil.ValidateUploadForm(upload)
	if err != nil {
		return nil, err
	}
	mediaType := upload.Type
	if mediaType == "" {
		mediaType = model.MediaTypeImage
	}
	if err := s.validationUtil.ValidateMediaType(mediaType); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateUploadBatch(upload.Files, s.maxFiles, s.maxFileSize); err != nil {
		return nil, err
	}

	stored, err := s.mediaStore.SaveAll(propertyID, upload.Files)
	if err != nil {
		return nil, err
	}

	items := make([]model.Media, 0, len(stored))
	paths := make([]string, 0, len(stored))
	for i, file := range stored {
		items = append(items, model.Media{
			Type:   mediaType,
			URL:    file.URL,
			Path:   file.Path,
			IsMain: isMain && i == 0 && mediaType == model.MediaTypeImage,
		})
		paths = append(paths, file.Path)
	}

	created, err := s.mediaDAO.CreateMedia(ctx, propertyID, items, func(current *model.Property) error {
		return check.Evaluate(pdp_model.PropertyOwnedBy(current.OwnerID), nil)
	})
	if err != nil {
		if rmErr := s.mediaStore.RemoveAll(paths); rmErr != nil {
			logger.Error("Failed to remove files of aborted upload", zap.Error(rmErr), zap.Int64("propertyID", propertyID))
		}
		return nil, err
	}

	s.invalidateListings(ctx)
	s.eventBus.Publish(ctx, util.EventMediaUploaded, created)

	logger.Info("Media uploaded successfully",
		zap.Int64("propertyID", propertyID),
		zap.Int("count", len(created)),
		zap.Int64("uploaderID", requesterID))
	return created, nil
}

func (s *MediaService) ListMedia(ctx context.Context, propertyID int64) ([]*model.Media, error) {
	return s.mediaDAO.ListMedia(ctx, propertyID)
}

// UpdateMedia toggles the main flag; setting it clears the other main images.
func (s *MediaService) UpdateMedia(ctx context.Context, requesterID, mediaID int64, isMain bool) (*model.Media, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	check := s.authorizer.Guarded(principal, policyUpdateMedia, mediaID)
	updated, err := s.mediaDAO.UpdateMedia(ctx, mediaID, isMain, func(current *model.MediaWithOwner) error {
		return check.Evaluate(pdp_model.PropertyOwnedBy(current.PropertyOwnerID), nil)
	})
	check.Record(ctx)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)

	logger.Info("Media updated successfully", zap.Int64("mediaID", mediaID), zap.Bool("isMain", isMain))
	return updated, nil
}

func (s *MediaService) DeleteMedia(ctx context.Context, requesterID, mediaID int64) error {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return err
	}

	check := s.authorizer.Guarded(principal, policyDeleteMedia, mediaID)
	deleted, err := s.mediaDAO.DeleteMedia(ctx, mediaID, func(current *model.MediaWithOwner) error {
		return check.Evaluate(pdp_model.PropertyOwnedBy(current.PropertyOwnerID), nil)
	})
	check.Record(ctx)
	if err != nil {
		return err
	}

	s.invalidateListings(ctx)
	s.eventBus.Publish(ctx, util.EventMediaDeleted, *deleted)

	logger.Info("Media deleted successfully", zap.Int64("mediaID", mediaID), zap.Int64("deleterID", requesterID))
	return nil
}

func (s *MediaService) invalidateListings(ctx context.Context) {
	if err := s.cacheService.InvalidateProperties(ctx); err != nil {
		logger.Warn("Failed to invalidate listing cache", zap.Error(err))
	}
}
