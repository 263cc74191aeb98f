package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/adapter/persistence/repository"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	mock_interfaces "github.com/alexferreiraaf/osmaster/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedOrders(t *testing.T, repo *repository.OrderMemoryRepository, orders ...entities.Order) {
	t.Helper()
	for _, o := range orders {
		_, err := repo.Create(context.Background(), o)
		require.NoError(t, err)
	}
}

func TestQueryUseCase_ListOrders(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := repository.NewOrderMemoryRepository()
	seedOrders(t, repo,
		entities.Order{ID: "OS-2025-000000A1", OrderDetails: entities.OrderDetails{Client: "JOÃO SILVA", Service: "Instalação"}, Status: entities.OrderStatusPendente, Date: base},
		entities.Order{ID: "OS-2025-000000A2", OrderDetails: entities.OrderDetails{Client: "Maria", Service: "Suporte ao joão"}, Status: entities.OrderStatusEmAndamento, Date: base.Add(time.Hour)},
		entities.Order{ID: "OS-2025-000000A3", OrderDetails: entities.OrderDetails{Client: "Pedro", Service: "Treinamento"}, Status: entities.OrderStatusConcluida, Date: base.Add(2 * time.Hour)},
		entities.Order{ID: "OS-2025-000000A4", OrderDetails: entities.OrderDetails{Client: "Pedro", Service: "Treinamento"}, Status: entities.OrderStatusPendente, Date: base.Add(2 * time.Hour)},
	)
	uc := NewQueryUseCase(repo, nil)

	t.Run("newest first", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, list, 4)
		assert.Equal(t, []string{"OS-2025-000000A4", "OS-2025-000000A3", "OS-2025-000000A2", "OS-2025-000000A1"}, ids(list))
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].Date.After(list[i-1].Date))
		}
	})

	t.Run("case insensitive search", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "joão", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"OS-2025-000000A2", "OS-2025-000000A1"}, ids(list))
	})

	t.Run("decomposed accents match composed text", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "joa\u0303o", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"OS-2025-000000A2", "OS-2025-000000A1"}, ids(list))

		nfd := repository.NewOrderMemoryRepository()
		seedOrders(t, nfd, entities.Order{ID: "OS-2025-000000B1", OrderDetails: entities.OrderDetails{Client: "Jose\u0301 Lima"}, Date: base})
		list, err = NewQueryUseCase(nfd, nil).ListOrders(ctx, "JOSÉ", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"OS-2025-000000B1"}, ids(list))
	})

	t.Run("search by id", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "os-2025-000000a3", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"OS-2025-000000A3"}, ids(list))
	})

	t.Run("limit", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("no match", func(t *testing.T) {
		list, err := uc.ListOrders(ctx, "inexistente", 0)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().List(gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := NewQueryUseCase(orders, nil).ListOrders(ctx, "", 0)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestQueryUseCase_GetOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewOrderMemoryRepository()
	seedOrders(t, repo, entities.Order{ID: "OS-2025-00000001", Status: entities.OrderStatusPendente})
	uc := NewQueryUseCase(repo, nil)

	o, err := uc.GetOrder(ctx, " OS-2025-00000001 ")
	require.NoError(t, err)
	assert.Equal(t, "OS-2025-00000001", o.ID)

	_, err = uc.GetOrder(ctx, "OS-2025-FFFFFFFF")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestQueryUseCase_GetOrderStats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		stats, err := NewQueryUseCase(repository.NewOrderMemoryRepository(), nil).GetOrderStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStats{}, stats)
	})

	t.Run("totals add up", func(t *testing.T) {
		f := newOrderFixture(t)
		f.seed(t, entities.OrderStatusPendente)
		f.seed(t, entities.OrderStatusPendente)
		f.seed(t, entities.OrderStatusEmAndamento)
		f.seed(t, entities.OrderStatusConcluida)
		uc := NewQueryUseCase(f.orders, nil)

		stats, err := uc.GetOrderStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStats{Total: 4, Pending: 2, Ongoing: 1, Completed: 1}, stats)
		assert.Equal(t, stats.Total, stats.Pending+stats.Ongoing+stats.Completed)

		list, err := uc.ListOrders(ctx, "", 0)
		require.NoError(t, err)
		assert.Equal(t, stats.Total, len(list))
	})

	t.Run("unknown status stays out of every counter", func(t *testing.T) {
		repo := repository.NewOrderMemoryRepository()
		seedOrders(t, repo,
			entities.Order{ID: "OS-2025-000000C1", Status: entities.OrderStatusPendente},
			entities.Order{ID: "OS-2025-000000C2", Status: ""},
			entities.Order{ID: "OS-2025-000000C3", Status: "Cancelada"},
		)

		stats, err := NewQueryUseCase(repo, nil).GetOrderStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStats{Total: 1, Pending: 1}, stats)
		assert.Equal(t, stats.Total, stats.Pending+stats.Ongoing+stats.Completed)
	})
}

func ids(orders []entities.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
