package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/casa/api/model"
)

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	n := NewNotificationService()

	assert.NoError(t, n.NotifyUserChange(ctx, "registered", model.User{Email: "ana@example.com", Language: model.LanguageEnglish}))
	assert.Error(t, n.NotifyUserChange(ctx, "registered", model.User{}))
	assert.Error(t, n.NotifyUserChange(ctx, "renamed", model.User{ID: 1}))
	assert.NoError(t, n.NotifyPropertyChange(ctx, "verified", model.Property{ID: 7}))
	assert.Error(t, n.NotifyPropertyChange(ctx, "moved", model.Property{ID: 7}))
	assert.NoError(t, n.NotifyAdmins(ctx, "Elevated field change denied"))
}
