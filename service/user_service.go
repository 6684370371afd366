// api/service/user_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/dao"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	ListUsers(ctx context.Context, requesterID int64, limit int, offset int) ([]*model.User, error)
	GetUser(ctx context.Context, requesterID, userID int64) (*model.User, error)
	UpdateUser(ctx context.Context, requesterID, userID int64, patch model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, requesterID, userID int64) error
	ListFavorites(ctx context.Context, requesterID, userID int64) ([]*model.Favorite, error)
	ListSavedSearches(ctx context.Context, requesterID, userID int64) ([]*model.SavedSearch, error)
	CreateSavedSearch(ctx context.Context, requesterID, userID int64, req model.CreateSavedSearchRequest) (*model.SavedSearch, error)
}

// UserService handles business logic for user operations
type UserService struct {
	userDAO         dao.IUserDAO
	favoriteDAO     dao.IFavoriteDAO
	savedSearchDAO  dao.ISavedSearchDAO
	authorizer      *Authorizer
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(userDAO dao.IUserDAO, favoriteDAO dao.IFavoriteDAO, savedSearchDAO dao.ISavedSearchDAO, authorizer *Authorizer, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *UserService {
	service := &UserService{
		userDAO:         userDAO,
		favoriteDAO:     favoriteDAO,
		savedSearchDAO:  savedSearchDAO,
		authorizer:      authorizer,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe(util.EventUserUpdated, service.handleUserUpdated)
	eventBus.Subscribe(util.EventUserDeleted, service.handleUserDeleted)

	return service
}

func (s *UserService) handleUserUpdated(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User updated event received", zap.Int64("userID", user.ID))

	if err := s.notificationSvc.NotifyUserChange(ctx, "updated", user); err != nil {
		logger.Warn("Failed to send user update notification", zap.Error(err), zap.Int64("userID", user.ID))
	}
	return nil
}

func (s *UserService) handleUserDeleted(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User deleted event received", zap.Int64("userID", user.ID))

	if err := s.notificationSvc.NotifyUserChange(ctx, "deleted", user); err != nil {
		logger.Warn("Failed to send user deletion notification", zap.Error(err), zap.Int64("userID", user.ID))
	}
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, requesterID int64, limit int, offset int) ([]*model.User, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Check(ctx, principal, policyListUsers, 0, pdp_model.Ownership{}, nil); err != nil {
		return nil, err
	}
	return s.userDAO.ListUsers(ctx, limit, offset)
}

func (s *UserService) GetUser(ctx context.Context, requesterID, userID int64) (*model.User, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Check(ctx, principal, policyReadUser, userID, pdp_model.OwnedBy(user.ID), nil); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update. Changing the role needs ADMIN; a new
// password is hashed before it reaches the store.
func (s *UserService) UpdateUser(ctx context.Context, requesterID, userID int64, patch model.UserPatch) (*model.User, error) {
	if err := s.validationUtil.ValidateUserPatch(patch); err != nil {
		return nil, err
	}

	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := util.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	changes := pdp_model.Changes(patch.ChangedFields()...)
	check := s.authorizer.Guarded(principal, policyUpdateUser, userID)
	updated, err := s.userDAO.UpdateUser(ctx, userID, patch, func(current *model.User) error {
		return check.Evaluate(pdp_model.OwnedBy(current.ID), changes)
	})
	check.Record(ctx)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserUpdated, *updated)

	logger.Info("User updated successfully", zap.Int64("userID", userID), zap.Int64("updaterID", requesterID))
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, requesterID, userID int64) error {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return err
	}

	var deleted model.User
	check := s.authorizer.Guarded(principal, policyDeleteUser, userID)
	err = s.userDAO.DeleteUser(ctx, userID, func(current *model.User) error {
		if err := check.Evaluate(pdp_model.OwnedBy(current.ID), nil); err != nil {
			return err
		}
		deleted = *current
		return nil
	})
	check.Record(ctx)
	if err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventUserDeleted, deleted)

	logger.Info("User deleted successfully", zap.Int64("userID", userID), zap.Int64("deleterID", requesterID))
	return nil
}

// authorizeCollection gates the per-user collections (favorites, saved searches).
func (s *UserService) authorizeCollection(ctx context.Context, requesterID, userID int64) error {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return err
	}
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.authorizer.Check(ctx, principal, policyUserCollections, userID, pdp_model.OwnedBy(userID), nil)
}

func (s *UserService) ListFavorites(ctx context.Context, requesterID, userID int64) ([]*model.Favorite, error) {
	if err := s.authorizeCollection(ctx, requesterID, userID); err != nil {
		return nil, err
	}
	return s.favoriteDAO.ListFavorites(ctx, userID)
}

func (s *UserService) ListSavedSearches(ctx context.Context, requesterID, userID int64) ([]*model.SavedSearch, error) {
	if err := s.authorizeCollection(ctx, requesterID, userID); err != nil {
		return nil, err
	}
	return s.savedSearchDAO.ListSavedSearches(ctx, userID)
}

func (s *UserService) CreateSavedSearch(ctx context.Context, requesterID, userID int64, req model.CreateSavedSearchRequest) (*model.SavedSearch, error) {
	if err := s.validationUtil.ValidateSavedSearch(req); err != nil {
		return nil, err
	}
	if err := s.authorizeCollection(ctx, requesterID, userID); err != nil {
		return nil, err
	}

	search, err := s.savedSearchDAO.CreateSavedSearch(ctx, model.SavedSearch{
		UserID:   userID,
		Name:     req.Name,
		Criteria: req.Criteria,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Saved search created", zap.Int64("userID", userID), zap.Int64("searchID", search.ID))
	return search, nil
}
