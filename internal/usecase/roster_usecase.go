package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const minEmployeeNameLength = 3

// IRosterUseCase manages the technician roster.
//
// Deleting a technician also unassigns every order assigned to them. The
// cascade is not transactional: the roster entry is removed first and each
// order is cleared by its own conditional write.

type IRosterUseCase interface {
	AddEmployee(ctx context.Context, name string, user entities.User) (entities.Employee, error)
	DeleteEmployee(ctx context.Context, name string, user entities.User) error
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
}

type RosterUseCase struct {
	employees interfaces.IEmployeeRepository
	orders    interfaces.IOrderRepository
	logger    *zap.Logger
}

var _ IRosterUseCase = (*RosterUseCase)(nil)

func NewRosterUseCase(employees interfaces.IEmployeeRepository, orders interfaces.IOrderRepository, logger *zap.Logger) *RosterUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterUseCase{employees: employees, orders: orders, logger: logger.Named("roster.usecase")}
}

func (u *RosterUseCase) AddEmployee(ctx context.Context, name string, user entities.User) (entities.Employee, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Employee{}, err
	}

	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minEmployeeNameLength {
		verr := newValidationError()
		verr.add("name", "O nome deve ter pelo menos 3 caracteres.")
		return entities.Employee{}, verr
	}

	created, err := u.employees.Create(ctx, entities.Employee{Name: name, CreatedAt: time.Now().UTC()})
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Employee{}, ErrDuplicateName
	}
	if err != nil {
		return entities.Employee{}, storeErr(err)
	}

	u.logger.Info("employee added", zap.String("name", created.Name), zap.String("user", user.Name))
	return created, nil
}

func (u *RosterUseCase) DeleteEmployee(ctx context.Context, name string, user entities.User) error {
	user, err := requireUser(user)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmployeeNotFound
	}

	removed, err := u.employees.Delete(ctx, name)
	if err != nil {
		return storeErr(err)
	}
	if removed.Name == "" {
		return ErrEmployeeNotFound
	}

	u.logger.Info("employee removed", zap.String("name", removed.Name), zap.String("user", user.Name))
	return u.unassignAll(ctx, removed.Name, user)
}

// unassignAll clears assignedTo on every order still pointing at name.
// All orders are attempted; failures are joined.
func (u *RosterUseCase) unassignAll(ctx context.Context, name string, user entities.User) error {
	assigned, err := u.orders.ListByAssignee(ctx, name)
	if err != nil {
		return storeErr(fmt.Errorf("list orders assigned to %q: %w", name, err))
	}

	var (
		errs    []error
		cleared int
	)
	empty := ""
	expected := name
	for _, o := range assigned {
		updated, err := u.orders.Update(ctx, o.ID, entities.OrderPatch{
			AssignedTo:       &empty,
			ExpectAssignedTo: &expected,
			UpdatedBy:        user.Name,
			UpdatedAt:        time.Now().UTC(),
		})
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			// Reassigned in the meantime, nothing to clear.
		case err != nil:
			errs = append(errs, fmt.Errorf("unassign order %s: %w", o.ID, err))
		case updated.ID != "":
			cleared++
		}
	}

	if len(errs) > 0 {
		u.logger.Error("roster cascade incomplete",
			zap.String("name", name),
			zap.Int("cleared", cleared),
			zap.Int("failed", len(errs)),
		)
		return storeErr(errors.Join(errs...))
	}
	if cleared > 0 {
		u.logger.Info("orders unassigned", zap.String("name", name), zap.Int("count", cleared))
	}
	return nil
}

func (u *RosterUseCase) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	list, err := u.employees.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		ki, kj := list[i].Key(), list[j].Key()
		if ki != kj {
			return ki < kj
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}
