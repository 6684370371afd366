// api/service/property_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/casa/api/dao"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// IPropertyService defines the interface for listing operations
type IPropertyService interface {
	ListProperties(ctx context.Context, filter model.PropertyFilter) (*model.PropertyPage, error)
	GetProperty(ctx context.Context, propertyID int64) (*model.Property, error)
	CreateProperty(ctx context.Context, requesterID int64, req model.CreatePropertyRequest) (*model.Property, error)
	UpdateProperty(ctx context.Context, requesterID, propertyID int64, patch model.PropertyPatch) (*model.Property, error)
	DeleteProperty(ctx context.Context, requesterID, propertyID int64) error
	AddFavorite(ctx context.Context, requesterID, propertyID int64) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, requesterID, propertyID int64) error
}

// propertyDeleted is the payload of util.EventPropertyDeleted.
type propertyDeleted struct {
	Property model.Property
	Paths    []string
}

// propertyUpdated is the payload of util.EventPropertyUpdated.
type propertyUpdated struct {
	Old model.Property
	New model.Property
}

type PropertyService struct {
	propertyDAO     dao.IPropertyDAO
	favoriteDAO     dao.IFavoriteDAO
	authorizer      *Authorizer
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	mediaStore      *util.MediaStore
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IPropertyService = &PropertyService{}

func NewPropertyService(propertyDAO dao.IPropertyDAO, favoriteDAO dao.IFavoriteDAO, authorizer *Authorizer, validationUtil *util.ValidationUtil, cacheService *util.CacheService, mediaStore *util.MediaStore, notificationSvc *util.NotificationService, eventBus *util.EventBus) *PropertyService {
	service := &PropertyService{
		propertyDAO:     propertyDAO,
		favoriteDAO:     favoriteDAO,
		authorizer:      authorizer,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		mediaStore:      mediaStore,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe(util.EventPropertyCreated, service.handlePropertyCreated)
	eventBus.Subscribe(util.EventPropertyUpdated, service.handlePropertyUpdated)
	eventBus.Subscribe(util.EventPropertyDeleted, service.handlePropertyDeleted)

	return service
}

func (s *PropertyService) handlePropertyCreated(ctx context.Context, event util.Event) error {
	property := event.Payload.(model.Property)
	if err := s.notificationSvc.NotifyPropertyChange(ctx, "created", property); err != nil {
		logger.Warn("Failed to send property creation notification", zap.Error(err), zap.Int64("propertyID", property.ID))
	}
	return nil
}

func (s *PropertyService) handlePropertyUpdated(ctx context.Context, event util.Event) error {
	payload := event.Payload.(propertyUpdated)

	changeType := "updated"
	if payload.New.Verified && !payload.Old.Verified {
		changeType = "verified"
	}
	if err := s.notificationSvc.NotifyPropertyChange(ctx, changeType, payload.New); err != nil {
		logger.Warn("Failed to send property update notification", zap.Error(err), zap.Int64("propertyID", payload.New.ID))
	}
	return nil
}

// handlePropertyDeleted removes the stored media files of a deleted listing.
func (s *PropertyService) handlePropertyDeleted(ctx context.Context, event util.Event) error {
	payload := event.Payload.(propertyDeleted)

	if err := s.notificationSvc.NotifyPropertyChange(ctx, "deleted", payload.Property); err != nil {
		logger.Warn("Failed to send property deletion notification", zap.Error(err), zap.Int64("propertyID", payload.Property.ID))
	}
	if err := s.mediaStore.RemoveAll(payload.Paths); err != nil {
		return fmt.Errorf("failed to remove media files of property %d: %w", payload.Property.ID, err)
	}
	return nil
}

// ListProperties serves public listing pages, from the cache when possible.
func (s *PropertyService) ListProperties(ctx context.Context, filter model.PropertyFilter) (*model.PropertyPage, error) {
	filter.Normalize()
	if err := s.validationUtil.ValidatePropertyFilter(filter); err != nil {
		return nil, err
	}

	cached, cacheKey, err := s.cacheService.GetPropertyPage(ctx, filter)
	if err != nil {
		logger.Warn("Failed to read listing cache", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	var (
		properties []*model.Property
		total      int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.propertyDAO.ListProperties(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.propertyDAO.CountProperties(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &model.PropertyPage{
		Properties: properties,
		Pagination: model.Pagination{
			Total: total,
			Page:  filter.Page,
			Limit: filter.Limit,
			Pages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		},
	}

	if err := s.cacheService.SetPropertyPage(ctx, cacheKey, page); err != nil {
		logger.Warn("Failed to cache listing page", zap.Error(err))
	}
	return page, nil
}

// GetProperty returns the listing and counts the view.
func (s *PropertyService) GetProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	return s.propertyDAO.ViewProperty(ctx, propertyID)
}

func (s *PropertyService) CreateProperty(ctx context.Context, requesterID int64, req model.CreatePropertyRequest) (*model.Property, error) {
	if err := s.validationUtil.ValidateCreateProperty(req); err != nil {
		return nil, err
	}

	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	property := model.Property{
		Title:            req.Title,
		TitleEn:          req.TitleEn,
		Description:      req.Description,
		DescriptionEn:    req.DescriptionEn,
		Price:            req.Price,
		Currency:         req.Currency,
		Type:             req.Type,
		Status:           req.Status,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		BuildingSize:     req.BuildingSize,
		LandSize:         req.LandSize,
		ConstructionYear: req.ConstructionYear,
		OwnerID:          principal.ID,
		Address:          req.Address,
		Features:         req.Features,
	}
	if property.Currency == "" {
		property.Currency = model.CurrencyMXN
	}
	if property.Status == "" {
		property.Status = model.PropertyStatusActive
	}

	created, err := s.propertyDAO.CreateProperty(ctx, property, req.Media)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.eventBus.Publish(ctx, util.EventPropertyCreated, *created)

	logger.Info("Property created successfully", zap.Int64("propertyID", created.ID), zap.Int64("ownerID", principal.ID))
	return created, nil
}

// UpdateProperty needs the owner or an ADMIN; only an ADMIN may change verified.
func (s *PropertyService) UpdateProperty(ctx context.Context, requesterID, propertyID int64, patch model.PropertyPatch) (*model.Property, error) {
	if err := s.validationUtil.ValidatePropertyPatch(patch); err != nil {
		return nil, err
	}

	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	var before model.Property
	changes := pdp_model.Changes(patch.ChangedFields()...)
	check := s.authorizer.Guarded(principal, policyUpdateProperty, propertyID)
	updated, err := s.propertyDAO.UpdateProperty(ctx, propertyID, patch, func(current *model.Property) error {
		if err := check.Evaluate(pdp_model.PropertyOwnedBy(current.OwnerID), changes); err != nil {
			return err
		}
		before = *current
		return nil
	})
	check.Record(ctx)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.eventBus.Publish(ctx, util.EventPropertyUpdated, propertyUpdated{Old: before, New: *updated})

	logger.Info("Property updated successfully", zap.Int64("propertyID", propertyID), zap.Int64("updaterID", requesterID))
	return updated, nil
}

// DeleteProperty removes the listing with its media rows and favorites; the
// stored files are removed after the event is handled.
func (s *PropertyService) DeleteProperty(ctx context.Context, requesterID, propertyID int64) error {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return err
	}

	var deleted model.Property
	check := s.authorizer.Guarded(principal, policyDeleteProperty, propertyID)
	paths, err := s.propertyDAO.DeleteProperty(ctx, propertyID, func(current *model.Property) error {
		if err := check.Evaluate(pdp_model.PropertyOwnedBy(current.OwnerID), nil); err != nil {
			return err
		}
		deleted = *current
		return nil
	})
	check.Record(ctx)
	if err != nil {
		return err
	}

	s.invalidateListings(ctx)
	s.eventBus.Publish(ctx, util.EventPropertyDeleted, propertyDeleted{Property: deleted, Paths: paths})

	logger.Info("Property deleted successfully", zap.Int64("propertyID", propertyID), zap.Int64("deleterID", requesterID))
	return nil
}

// AddFavorite and RemoveFavorite act on the requester's own collection, so
// no rule beyond authentication applies.
func (s *PropertyService) AddFavorite(ctx context.Context, requesterID, propertyID int64) (*model.Favorite, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.favoriteDAO.AddFavorite(ctx, principal.ID, propertyID)
}

func (s *PropertyService) RemoveFavorite(ctx context.Context, requesterID, propertyID int64) error {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return err
	}
	return s.favoriteDAO.RemoveFavorite(ctx, principal.ID, propertyID)
}

func (s *PropertyService) invalidateListings(ctx context.Context) {
	if err := s.cacheService.InvalidateProperties(ctx); err != nil {
		logger.Warn("Failed to invalidate listing cache", zap.Error(err))
	}
}
