// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

// NotificationService delivers user-facing notices. Delivery is logged
// until a mail provider is configured.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	switch changeType {
	case "registered":
		subject := "Welcome to Casa"
		if user.Language == model.LanguageEnglish {
			return n.SendEmail(ctx, user.Email, subject, "Your account is ready.")
		}
		return n.SendEmail(ctx, user.Email, "Bienvenido a Casa", "Tu cuenta está lista.")
	case "updated", "deleted":
		logger.Info("NOTIFICATION: User "+changeType,
			zap.Int64("userID", user.ID),
			zap.String("email", user.Email))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyPropertyChange(ctx context.Context, changeType string, property model.Property) error {
	switch changeType {
	case "created", "updated", "deleted", "verified":
		logger.Info("NOTIFICATION: Property "+changeType,
			zap.Int64("propertyID", property.ID),
			zap.Int64("ownerID", property.OwnerID),
			zap.String("title", property.Title))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("missing email recipient")
	}
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

// NotifyAdmins is used for security relevant events such as repeated denials.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string, fields ...zap.Field) error {
	logger.Warn("Notifying admins: "+message, fields...)
	return nil
}
