package repository

import (
	"context"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate id", func(t *testing.T) {
		r := NewOrderMemoryRepository()
		_, err := r.Create(ctx, entities.Order{ID: "os-1"})
		require.NoError(t, err)
		_, err = r.Create(ctx, entities.Order{ID: "os-1"})
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("returned orders do not alias storage", func(t *testing.T) {
		r := NewOrderMemoryRepository()
		_, err := r.Create(ctx, entities.Order{ID: "os-1", Image: &entities.Attachment{FileName: "a.png"}})
		require.NoError(t, err)

		got, _ := r.GetByID(ctx, "os-1")
		got.Image.FileName = "changed.png"

		again, _ := r.GetByID(ctx, "os-1")
		assert.Equal(t, "a.png", again.Image.FileName)
	})

	t.Run("update preconditions", func(t *testing.T) {
		r := NewOrderMemoryRepository()
		_, err := r.Create(ctx, entities.Order{ID: "os-1", Status: entities.OrderStatusPendente, AssignedTo: "Carlos"})
		require.NoError(t, err)

		wrongStatus := entities.OrderStatusConcluida
		_, err = r.Update(ctx, "os-1", entities.OrderPatch{ExpectStatus: &wrongStatus})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

		wrongAssignee := "Beatriz"
		_, err = r.Update(ctx, "os-1", entities.OrderPatch{ExpectAssignedTo: &wrongAssignee})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

		empty := ""
		expected := "Carlos"
		updated, err := r.Update(ctx, "os-1", entities.OrderPatch{AssignedTo: &empty, ExpectAssignedTo: &expected, UpdatedBy: "Ana"})
		require.NoError(t, err)
		assert.Empty(t, updated.AssignedTo)
		assert.Equal(t, "Ana", updated.LastUpdatedBy)
	})

	t.Run("missing order", func(t *testing.T) {
		r := NewOrderMemoryRepository()
		got, err := r.Update(ctx, "nope", entities.OrderPatch{})
		require.NoError(t, err)
		assert.Empty(t, got.ID)

		deleted, err := r.Delete(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("list by assignee", func(t *testing.T) {
		r := NewOrderMemoryRepository()
		for _, o := range []entities.Order{{ID: "1", AssignedTo: "Carlos"}, {ID: "2"}, {ID: "3", AssignedTo: "Carlos"}} {
			_, err := r.Create(ctx, o)
			require.NoError(t, err)
		}

		list, err := r.ListByAssignee(ctx, "Carlos")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = r.ListByAssignee(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestEmployeeMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewEmployeeMemoryRepository()

	_, err := r.Create(ctx, entities.Employee{Name: "Álvaro"})
	require.NoError(t, err)
	_, err = r.Create(ctx, entities.Employee{Name: "ÁLVARO"})
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)

	got, err := r.GetByName(ctx, " álvaro ")
	require.NoError(t, err)
	assert.Equal(t, "Álvaro", got.Name)

	removed, err := r.Delete(ctx, "ÁLVARO")
	require.NoError(t, err)
	assert.Equal(t, "Álvaro", removed.Name)

	removed, err = r.Delete(ctx, "Álvaro")
	require.NoError(t, err)
	assert.Empty(t, removed.Name)
}

func TestUserMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUserMemoryRepository()

	_, err := r.Create(ctx, entities.Account{User: entities.User{Name: "Ana", Email: "ana@example.com"}, PasswordHash: "h1"})
	require.NoError(t, err)
	_, err = r.Create(ctx, entities.Account{User: entities.User{Name: "Ana 2", Email: "ana@example.com"}})
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)

	acc, err := r.UpdatePassword(ctx, "ana@example.com", "h2")
	require.NoError(t, err)
	assert.Equal(t, "h2", acc.PasswordHash)

	acc, err = r.UpdatePassword(ctx, "nobody@example.com", "h3")
	require.NoError(t, err)
	assert.Empty(t, acc.Email)
}
