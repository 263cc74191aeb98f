package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxOrderIDAttempts = 3

// IOrderUseCase exposes the order lifecycle.
//
// Every mutation is stamped with the acting user and performed as a single
// conditional write, so concurrent writers never interleave inside one call.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in OrderInput, user entities.User) (entities.Order, error)
	UpdateOrderDetails(ctx context.Context, id string, details entities.OrderDetails, user entities.User) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, user entities.User) (entities.Order, error)
	UpdateChecklist(ctx context.Context, id string, items map[string]bool, user entities.User) (entities.Order, error)
	UpdateDescription(ctx context.Context, id string, text string, user entities.User) (entities.Order, error)
	AssignTechnician(ctx context.Context, id string, name string, user entities.User) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string, user entities.User) error
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	employees interfaces.IEmployeeRepository
	events    interfaces.IEventPublisher
	logger    *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	employees interfaces.IEmployeeRepository,
	events interfaces.IEventPublisher,
	logger *zap.Logger,
) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		orders:    orders,
		employees: employees,
		events:    events,
		logger:    logger.Named("order.usecase"),
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in OrderInput, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	verr := newValidationError()
	details := normalizeDetails(in.OrderDetails, verr)
	validateDescription(in.Description, verr)
	if err := verr.orNil(); err != nil {
		return entities.Order{}, err
	}

	assignee, err := u.resolveAssignee(ctx, in.AssignedTo)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		OrderDetails:  details,
		Description:   in.Description,
		AssignedTo:    assignee,
		Status:        entities.OrderStatusPendente,
		Date:          now,
		LastUpdatedBy: user.Name,
		UpdatedAt:     now,
	}

	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		o.ID = newOrderID(now)
		created, err := u.orders.Create(ctx, o)
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return entities.Order{}, storeErr(err)
		}

		u.logger.Info("order created",
			zap.String("order_id", created.ID),
			zap.String("client", created.Client),
			zap.String("user", user.Name),
		)
		u.publishCreated(ctx, created)
		return created, nil
	}
	return entities.Order{}, storeErr(errors.New("could not allocate a unique order id"))
}

func (u *OrderUseCase) UpdateOrderDetails(ctx context.Context, id string, details entities.OrderDetails, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	verr := newValidationError()
	details = normalizeDetails(details, verr)
	if err := verr.orNil(); err != nil {
		return entities.Order{}, err
	}

	return u.patch(ctx, id, entities.OrderPatch{Details: &details}, user)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	current, err := u.get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	// A status outside the workflow is unreachable from any state.
	if !status.Valid() || !current.Status.CanTransitionTo(status) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	expected := current.Status
	updated, err := u.patch(ctx, current.ID, entities.OrderPatch{Status: &status, ExpectStatus: &expected}, user)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Another writer moved the order after we read it.
		return entities.Order{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
	}
	if err != nil {
		return entities.Order{}, err
	}

	u.logger.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", string(expected)),
		zap.String("to", string(status)),
		zap.String("user", user.Name),
	)
	return updated, nil
}

func (u *OrderUseCase) UpdateChecklist(ctx context.Context, id string, items map[string]bool, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	verr := newValidationError()
	for k := range items {
		if !entities.IsChecklistKey(k) {
			verr.add("checklist."+k, "Item de checklist desconhecido.")
		}
	}
	if err := verr.orNil(); err != nil {
		return entities.Order{}, err
	}

	merged := make(map[string]bool, len(items))
	for k, v := range items {
		merged[k] = v
	}
	return u.patch(ctx, id, entities.OrderPatch{Checklist: merged}, user)
}

func (u *OrderUseCase) UpdateDescription(ctx context.Context, id string, text string, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	verr := newValidationError()
	validateDescription(text, verr)
	if err := verr.orNil(); err != nil {
		return entities.Order{}, err
	}

	return u.patch(ctx, id, entities.OrderPatch{Description: &text}, user)
}

func (u *OrderUseCase) AssignTechnician(ctx context.Context, id string, name string, user entities.User) (entities.Order, error) {
	user, err := requireUser(user)
	if err != nil {
		return entities.Order{}, err
	}

	assignee, err := u.resolveAssignee(ctx, name)
	if err != nil {
		return entities.Order{}, err
	}
	return u.patch(ctx, id, entities.OrderPatch{AssignedTo: &assignee}, user)
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string, user entities.User) error {
	user, err := requireUser(user)
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrOrderNotFound
	}

	deleted, err := u.orders.Delete(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	if !deleted {
		return ErrOrderNotFound
	}

	u.logger.Info("order deleted", zap.String("order_id", id), zap.String("user", user.Name))
	return nil
}

func (u *OrderUseCase) get(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, storeErr(err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// patch stamps the audit fields and performs the conditional write.
// ErrConditionFailed is passed through untouched for the caller to map.
func (u *OrderUseCase) patch(ctx context.Context, id string, p entities.OrderPatch, user entities.User) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	p.UpdatedBy = user.Name
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Update(ctx, id, p)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, storeErr(err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// resolveAssignee maps the form value to the roster's canonical spelling.
// Empty and "none" mean unassigned.
func (u *OrderUseCase) resolveAssignee(ctx context.Context, name string) (string, error) {
	name = normalizeAssignee(name)
	if name == "" {
		return "", nil
	}

	e, err := u.employees.GetByName(ctx, name)
	if err != nil {
		return "", storeErr(err)
	}
	if e.Name == "" {
		verr := newValidationError()
		verr.add("assignedTo", "Técnico não encontrado.")
		return "", verr
	}
	return e.Name, nil
}

func (u *OrderUseCase) publishCreated(ctx context.Context, o entities.Order) {
	if u.events == nil {
		return
	}
	err := u.events.PublishOrderCreated(ctx, entities.OrderCreatedEvent{
		ID:            o.ID,
		Client:        o.Client,
		Service:       o.Service,
		LastUpdatedBy: o.LastUpdatedBy,
		Date:          o.Date,
	})
	if err != nil {
		u.logger.Warn("failed to publish order created event", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func newOrderID(now time.Time) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("OS-%d-%s", now.Year(), strings.ToUpper(hex[:8]))
}
