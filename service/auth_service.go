// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// IAuthService defines the interface for registration and sessions
type IAuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error)
	RefreshToken(ctx context.Context, userID int64) (string, error)
	Me(ctx context.Context, userID int64) (*model.User, error)
}

type AuthService struct {
	userDAO         dao.IUserDAO
	tokens          *util.TokenManager
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAuthService = &AuthService{}

func NewAuthService(userDAO dao.IUserDAO, tokens *util.TokenManager, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *AuthService {
	service := &AuthService{
		userDAO:         userDAO,
		tokens:          tokens,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventUserRegistered, service.handleUserRegistered)

	return service
}

func (s *AuthService) handleUserRegistered(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	if err := s.notificationSvc.NotifyUserChange(ctx, "registered", user); err != nil {
		logger.Warn("Failed to send welcome notification", zap.Error(err), zap.Int64("userID", user.ID))
	}
	return nil
}

// Register creates a USER account and signs a token for it.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validationUtil.ValidateRegistration(req); err != nil {
		return nil, err
	}

	existing, err := s.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, echo_errors.ErrUserConflict
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = model.LanguageSpanish
	}

	user, err := s.userDAO.CreateUser(ctx, model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         model.RoleUser,
		Language:     language,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}

	s.eventBus.Publish(ctx, util.EventUserRegistered, *user)

	logger.Info("User registered", zap.Int64("userID", user.ID))
	return &model.AuthResult{User: user, Token: token}, nil
}

// Login never tells the caller whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			logger.Info("Login for unknown email")
			return nil, echo_errors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := util.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	if !ok {
		logger.Info("Login with wrong password", zap.Int64("userID", user.ID))
		return nil, echo_errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	return &model.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, userID int64) (string, error) {
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			return "", echo_errors.ErrUnauthenticated
		}
		return "", err
	}

	token, err := s.tokens.GenerateToken(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	return token, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}
