package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/repository"
)

type StatsService struct {
	orders repository.OrderRepository
	menu   repository.MenuRepository
}

func NewStatsService(orders repository.OrderRepository, menu repository.MenuRepository) *StatsService {
	return &StatsService{orders: orders, menu: menu}
}

// ComputeStats aggregates the whole orders collection against the catalog.
// Both collections are loaded concurrently.
func (s *StatsService) ComputeStats(ctx context.Context) (*domain.Stats, error) {
	var (
		menu   []domain.MenuItem
		orders []domain.Order
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menu, err = s.menu.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.FindAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[domain.OrderStatus]int, len(domain.AllStatuses)),
		PopularItems:   make([]domain.ItemStats, 0, len(menu)),
	}
	for _, status := range domain.AllStatuses {
		stats.OrdersByStatus[status] = 0
	}

	for _, o := range orders {
		stats.TotalRevenue += o.TotalPrice
		if _, ok := stats.OrdersByStatus[o.Status]; ok {
			stats.OrdersByStatus[o.Status]++
		}
	}

	// One entry per menu item, catalog order; ties keep that order.
	for _, item := range menu {
		entry := domain.ItemStats{Name: item.Name}
		for _, o := range orders {
			if o.ItemID == item.ID {
				entry.Orders++
				entry.Revenue += o.TotalPrice
			}
		}
		stats.PopularItems = append(stats.PopularItems, entry)
	}
	sort.SliceStable(stats.PopularItems, func(i, j int) bool {
		return stats.PopularItems[i].Orders > stats.PopularItems[j].Orders
	})

	return stats, nil
}
