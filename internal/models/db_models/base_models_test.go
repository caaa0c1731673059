package db_models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelcompanion/internal/models/db_models"
)

func TestBaseModelBeforeCreate(t *testing.T) {
	var m db_models.BaseModel
	require.NoError(t, m.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.NotZero(t, m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
}

func TestBaseModelBeforeCreateKeepsPresetID(t *testing.T) {
	preset := uuid.New()
	m := db_models.BaseModel{ID: preset}
	require.NoError(t, m.BeforeCreate(nil))

	assert.Equal(t, preset, m.ID)
}
