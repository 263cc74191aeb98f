package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// IQueryUseCase is the read side used by the dashboard and the order list.

type IQueryUseCase interface {
	ListOrders(ctx context.Context, searchTerm string, limit int) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	GetOrderStats(ctx context.Context) (entities.OrderStats, error)
}

type QueryUseCase struct {
	orders interfaces.IOrderRepository
	logger *zap.Logger
}

var _ IQueryUseCase = (*QueryUseCase)(nil)

func NewQueryUseCase(orders interfaces.IOrderRepository, logger *zap.Logger) *QueryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryUseCase{orders: orders, logger: logger.Named("query.usecase")}
}

// ListOrders returns orders newest first, filtered by a case-insensitive
// substring of client, service or id. limit <= 0 returns everything.
func (u *QueryUseCase) ListOrders(ctx context.Context, searchTerm string, limit int) ([]entities.Order, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]entities.Order, 0, len(all))
	term := strings.TrimSpace(searchTerm)
	if term == "" {
		out = append(out, all...)
	} else {
		needle := searchKey(term)
		for _, o := range all {
			if strings.Contains(searchKey(o.Client), needle) ||
				strings.Contains(searchKey(o.Service), needle) ||
				strings.Contains(searchKey(o.ID), needle) {
				out = append(out, o)
			}
		}
	}

	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (u *QueryUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
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

// searchKey composes accents (NFD input from some clients) before folding case.
func searchKey(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// GetOrderStats counts a single listing so the totals always add up. Orders
// with a status outside the workflow are left out of every counter.
func (u *QueryUseCase) GetOrderStats(ctx context.Context) (entities.OrderStats, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return entities.OrderStats{}, storeErr(err)
	}

	var s entities.OrderStats
	for _, o := range all {
		switch o.Status {
		case entities.OrderStatusPendente:
			s.Pending++
		case entities.OrderStatusEmAndamento:
			s.Ongoing++
		case entities.OrderStatusConcluida:
			s.Completed++
		default:
			u.logger.Warn("order with unknown status left out of stats",
				zap.String("order_id", o.ID),
				zap.String("status", string(o.Status)),
			)
			continue
		}
		s.Total++
	}
	return s, nil
}

func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].Date.Equal(orders[j].Date) {
			return orders[i].Date.After(orders[j].Date)
		}
		return orders[i].ID > orders[j].ID
	})
}
