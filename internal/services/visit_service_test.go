package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

func TestCreateVisitIsAlwaysConfirmed(t *testing.T) {
	var inserted *db_models.Visit
	repo := &mockVisitRepo{
		insertFn: func(_ context.Context, visit *db_models.Visit) error {
			visit.ID = uuid.New()
			inserted = visit
			return nil
		},
	}

	svc := services.NewVisitService(repo)
	userID := uuid.New()

	visit, err := svc.CreateVisit(context.Background(), userID, request_models.CreateVisitRequest{
		ExternalID: "fsq-9",
		Name:       "Old Town Square",
		Category:   db_models.CategoryAttraction,
	})

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, userID, inserted.UserID)
	assert.True(t, inserted.Confirmed)
	assert.True(t, visit.Confirmed)
	assert.Equal(t, "fsq-9", visit.ExternalID)
}

func TestListVisits(t *testing.T) {
	userID := uuid.New()
	repo := &mockVisitRepo{
		listUserVisitsFn: func(_ context.Context, gotUser uuid.UUID) ([]db_models.Visit, error) {
			assert.Equal(t, userID, gotUser)
			v := db_models.Visit{ExternalID: "fsq-9", Name: "Old Town Square", Confirmed: true}
			v.ID = uuid.New()
			return []db_models.Visit{v}, nil
		},
	}

	svc := services.NewVisitService(repo)

	visits, err := svc.ListVisits(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "Old Town Square", visits[0].Name)
}

func TestCreateVisitStorageError(t *testing.T) {
	repo := &mockVisitRepo{
		insertFn: func(context.Context, *db_models.Visit) error {
			return errors.New("insert failed")
		},
	}

	svc := services.NewVisitService(repo)

	_, err := svc.CreateVisit(context.Background(), uuid.New(), request_models.CreateVisitRequest{ExternalID: "fsq-9"})

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
