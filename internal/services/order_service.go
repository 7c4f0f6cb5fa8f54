package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dhanuka2552/food/internal/domain"
	rabbit "github.com/Dhanuka2552/food/internal/infra/rabbitmq"
	"github.com/Dhanuka2552/food/internal/repository"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrSaveFailed       = errors.New("failed to save order")
)

// ValidationError carries the exact message returned to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrFieldsRequired  = &ValidationError{"All fields are required"}
	ErrNameLettersOnly = &ValidationError{"Name should contain only letters."}
	ErrInvalidMenuItem = &ValidationError{"Invalid menu item"}
	ErrQuantityTooLow  = &ValidationError{"Quantity must be at least 1"}
	ErrInvalidPhone    = &ValidationError{"Enter a valid phone number (7-15 digits)"}
	ErrAddressTooShort = &ValidationError{"Address must be at least 5 characters"}
	ErrInvalidStatus   = &ValidationError{"Valid status is required"}
)

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s]+$`)
	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// CreateOrderInput carries the raw request fields; Quantity stays a string
// so "not an integer" is a validation failure, not a decode failure.
type CreateOrderInput struct {
	Item     string
	Quantity string
	Name     string
	Phone    string
	Address  string
	Payment  string
}

type OrderService struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	publisher rabbit.PublisherInterface

	now func() time.Time

	idMu   sync.Mutex
	lastID int64
}

func NewOrderService(orders repository.OrderRepository, menu repository.MenuRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		menu:      menu,
		publisher: pub,
		now:       time.Now,
	}
}

// nextID derives ids from the millisecond clock, bumped past the last
// issued id so two creations on the same tick never collide.
func (s *OrderService) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// CreateOrder validates the input rule by rule (first failure wins), then
// snapshots the menu price, persists the order and emits order.created.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if in.Item == "" || in.Quantity == "" || in.Name == "" || in.Phone == "" || in.Address == "" || in.Payment == "" {
		return nil, ErrFieldsRequired
	}

	if !nameRe.MatchString(strings.TrimSpace(in.Name)) {
		return nil, ErrNameLettersOnly
	}

	item, err := s.menu.FindByName(in.Item)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInvalidMenuItem
	}

	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || qty < 1 {
		return nil, ErrQuantityTooLow
	}

	digits := nonDigitRe.ReplaceAllString(strings.TrimSpace(in.Phone), "")
	if len(digits) < 7 || len(digits) > 15 {
		return nil, ErrInvalidPhone
	}

	if len(strings.TrimSpace(in.Address)) < 5 {
		return nil, ErrAddressTooShort
	}

	now := s.now()
	order := &domain.Order{
		ID:              s.nextID(),
		Item:            in.Item,
		ItemID:          item.ID,
		Quantity:        qty,
		Price:           item.Price,
		TotalPrice:      item.Price * int64(qty),
		CustomerName:    in.Name,
		CustomerPhone:   in.Phone,
		DeliveryAddress: in.Address,
		PaymentMethod:   in.Payment,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Save(order); err != nil {
		log.Error().Err(err).Int64("order_id", order.ID).Msg("order save failed")
		return nil, ErrSaveFailed
	}

	go s.publish(context.Background(), "order.created", domain.OrderCreatedEvent{
		OrderID:    order.ID,
		Item:       order.Item,
		ItemID:     order.ItemID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	})

	return order, nil
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.orders.FindAll()
}

func (s *OrderService) GetOrder(id int64) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus sets the order to any of the six valid statuses; no
// transition graph is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.Status = status
	order.UpdatedAt = s.now()

	found, err := s.orders.Update(order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrOrderNotFound
	}

	go s.publish(context.Background(), "order.status_updated", domain.OrderStatusUpdatedEvent{
		OrderID:   order.ID,
		Status:    order.Status,
		UpdatedAt: order.UpdatedAt,
	})

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	found, err := s.orders.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	go s.publish(context.Background(), "order.deleted", domain.OrderDeletedEvent{
		OrderID:   id,
		DeletedAt: s.now(),
	})

	return nil
}

func (s *OrderService) publish(ctx context.Context, routingKey string, event any) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
