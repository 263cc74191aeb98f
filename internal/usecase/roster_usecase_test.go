package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/adapter/persistence/repository"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"
	mock_interfaces "github.com/alexferreiraaf/osmaster/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRosterUseCase_AddEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("adds trimmed name", func(t *testing.T) {
		uc := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

		e, err := uc.AddEmployee(ctx, "  Carlos Souza ", actor)
		require.NoError(t, err)
		assert.Equal(t, "Carlos Souza", e.Name)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("too short", func(t *testing.T) {
		uc := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

		_, err := uc.AddEmployee(ctx, " Jo ", actor)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Fields["name"])
	})

	t.Run("duplicate in any case", func(t *testing.T) {
		uc := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

		_, err := uc.AddEmployee(ctx, "Álvaro", actor)
		require.NoError(t, err)

		for _, dup := range []string{"Álvaro", "ÁLVARO", " álvaro "} {
			_, err = uc.AddEmployee(ctx, dup, actor)
			assert.ErrorIs(t, err, ErrDuplicateName, dup)
		}

		list, err := uc.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

		_, err := uc.AddEmployee(ctx, "Carlos", entities.User{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRosterUseCase(employees, nil, nil)

		employees.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Employee{}, errors.New("boom"))

		_, err := uc.AddEmployee(ctx, "Carlos", actor)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestRosterUseCase_DeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade clears assignments", func(t *testing.T) {
		f := newOrderFixture(t)
		roster := NewRosterUseCase(f.employees, f.orders, nil)
		f.addEmployee(t, "Carlos")
		f.addEmployee(t, "Beatriz")

		var carlosOrders, beatrizOrders []string
		for i := 0; i < 3; i++ {
			in := validOrderInput()
			in.AssignedTo = "Carlos"
			o, err := f.uc.CreateOrder(ctx, in, actor)
			require.NoError(t, err)
			carlosOrders = append(carlosOrders, o.ID)
		}
		in := validOrderInput()
		in.AssignedTo = "Beatriz"
		o, err := f.uc.CreateOrder(ctx, in, actor)
		require.NoError(t, err)
		beatrizOrders = append(beatrizOrders, o.ID)

		require.NoError(t, roster.DeleteEmployee(ctx, "carlos", entities.User{Name: "Gerente"}))

		all, err := f.orders.List(ctx)
		require.NoError(t, err)
		for _, o := range all {
			assert.NotEqual(t, "Carlos", o.AssignedTo, o.ID)
		}
		for _, id := range carlosOrders {
			got, _ := f.orders.GetByID(ctx, id)
			assert.Empty(t, got.AssignedTo)
			assert.Equal(t, "Gerente", got.LastUpdatedBy)
		}
		for _, id := range beatrizOrders {
			got, _ := f.orders.GetByID(ctx, id)
			assert.Equal(t, "Beatriz", got.AssignedTo)
		}

		list, err := roster.ListEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Beatriz", list[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		roster := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

		err := roster.DeleteEmployee(ctx, "Ninguém", actor)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reassigned meanwhile is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		roster := NewRosterUseCase(employees, orders, nil)

		employees.EXPECT().Delete(gomock.Any(), "Carlos").Return(entities.Employee{Name: "Carlos"}, nil)
		orders.EXPECT().ListByAssignee(gomock.Any(), "Carlos").Return([]entities.Order{{ID: "os-1"}, {ID: "os-2"}}, nil)
		orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(entities.Order{}, interfaces.ErrConditionFailed)
		orders.EXPECT().Update(gomock.Any(), "os-2", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
				require.NotNil(t, p.AssignedTo)
				require.NotNil(t, p.ExpectAssignedTo)
				assert.Empty(t, *p.AssignedTo)
				assert.Equal(t, "Carlos", *p.ExpectAssignedTo)
				return entities.Order{ID: id}, nil
			},
		)

		assert.NoError(t, roster.DeleteEmployee(ctx, "Carlos", actor))
	})

	t.Run("partial cascade failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		roster := NewRosterUseCase(employees, orders, nil)

		employees.EXPECT().Delete(gomock.Any(), "Carlos").Return(entities.Employee{Name: "Carlos"}, nil)
		orders.EXPECT().ListByAssignee(gomock.Any(), "Carlos").Return([]entities.Order{{ID: "os-1"}, {ID: "os-2"}}, nil)
		orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(entities.Order{}, errors.New("throttled"))
		orders.EXPECT().Update(gomock.Any(), "os-2", gomock.Any()).Return(entities.Order{ID: "os-2"}, nil)

		err := roster.DeleteEmployee(ctx, "Carlos", actor)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "os-1")
	})
}

func TestRosterUseCase_ListEmployees(t *testing.T) {
	ctx := context.Background()
	uc := NewRosterUseCase(repository.NewEmployeeMemoryRepository(), repository.NewOrderMemoryRepository(), nil)

	for _, n := range []string{"beatriz", "Carlos", "Álvaro", "Ana Paula"} {
		_, err := uc.AddEmployee(ctx, n, actor)
		require.NoError(t, err)
	}

	list, err := uc.ListEmployees(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Ana Paula", "beatriz", "Carlos", "Álvaro"}, names)
}
