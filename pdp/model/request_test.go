package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldChanges(t *testing.T) {
	changes := Changes("verified", "title")

	assert.True(t, changes.Has("verified"))
	assert.False(t, changes.Has("role"))
	assert.Equal(t, []string{"title", "verified"}, changes.Fields())
	assert.Empty(t, FieldChanges(nil).Fields())
}
