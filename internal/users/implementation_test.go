package users

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca/internal/apperr"
)

func newTestService() Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(NewMemoryRepository(), log)
}

func strPtr(s string) *string { return &s }

func TestCreateAndFind(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, User{Name: "Ana", Document: "123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	_, err = svc.FindByID(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, User{Document: "123"})
	assert.EqualError(t, err, "name is required")

	_, err = svc.Create(ctx, User{Name: "Ana"})
	assert.EqualError(t, err, "document is required")

	long := make([]byte, 41)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Create(ctx, User{Name: string(long), Document: "123"})
	assert.EqualError(t, err, "name must not exceed 40 characters")
}

func TestListEmptySignalsNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.Create(ctx, User{Name: "Ana", Document: "123"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEditMergesNonBlankFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, User{Name: "Ana", Surname: "Diaz", Document: "123"})
	require.NoError(t, err)

	updated, err := svc.Edit(ctx, created.ID, Patch{
		Name:     strPtr("Maria"),
		Surname:  strPtr("  "), // blank, ignored
		Document: nil,          // absent, ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "Diaz", updated.Surname)
	assert.Equal(t, "123", updated.Document)

	_, err = svc.Edit(ctx, 99, Patch{})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteReportsBool(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, User{Name: "Ana", Document: "123"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "missing id reports false, not an error")
}
