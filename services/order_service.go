package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/repository"
	"github.com/Mikjohns10/instabite-backend/utils"

	"gorm.io/gorm"
)

// number of fresh order codes tried before giving up on collisions
const maxCodeRetries = 3

// OrderFeed receives order lifecycle events for live delivery to
// restaurant clients. Implemented by ws.OrderFeedHub; may be nil.
type OrderFeed interface {
	Publish(restaurantID uint, event OrderEvent)
}

type OrderEvent struct {
	Type  string        `json:"type"` // "order.created" | "order.status"
	Order *entity.Order `json:"order"`
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	Feed     OrderFeed
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	feed OrderFeed,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, Feed: feed}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type CreateOrderReq struct {
	RestaurantID        uint          `json:"restaurantId"`
	CustomerName        string        `json:"customerName"`
	CustomerPhone       string        `json:"customerPhone"`
	CustomerAddress     string        `json:"customerAddress"`
	CustomerEmail       string        `json:"customerEmail"`
	Lines               []OrderLineIn `json:"items"`
	SpecialInstructions string        `json:"specialInstructions"`
	PaymentMethod       string        `json:"paymentMethod"`
}

// BillPath is the locator for retrieving an order's invoice.
func BillPath(orderID uint) string {
	return fmt.Sprintf("/orders/%d/bill", orderID)
}

// Create computes line totals, snapshots the seller and persists the
// order with all lines in one transaction. A missing restaurant does
// not fail creation; the order is simply stored without the snapshot.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Lines) == 0 {
		return nil, errors.New("items is required")
	}

	var total int64
	lines := make([]entity.OrderLine, 0, len(req.Lines))
	for _, in := range req.Lines {
		if in.Quantity <= 0 {
			return nil, errors.New("quantity must be positive")
		}
		if in.Price < 0 {
			return nil, errors.New("price must not be negative")
		}
		itemTotal := in.Price * int64(in.Quantity)
		total += itemTotal
		lines = append(lines, entity.OrderLine{
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
			ItemTotal: itemTotal,
		})
	}

	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = "UPI"
	}

	order := entity.Order{
		RestaurantID:        req.RestaurantID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		CustomerEmail:       req.CustomerEmail,
		Items:               lines,
		TotalAmount:         total,
		Status:              "pending",
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       method,
	}

	// seller snapshot, lenient about a missing restaurant
	if rest, err := s.RestRepo.FindByID(req.RestaurantID); err == nil {
		order.RestaurantName = rest.Name
		order.RestaurantAddress = rest.Address
		order.RestaurantGstin = rest.Gstin
	}

	var lastErr error
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		order.OrderCode = utils.GenerateOrderCode()
		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.CreateOrder(tx, &order)
		})
		if lastErr == nil {
			break
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return nil, lastErr
		}
		// collision: reset ids so the retry inserts a fresh record
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
	}
	if lastErr != nil {
		return nil, ErrDuplicateOrderCode
	}

	if s.Feed != nil {
		s.Feed.Publish(order.RestaurantID, OrderEvent{Type: "order.created", Order: &order})
	}
	return &order, nil
}

func (s *OrderService) ListForRestaurant(restID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForRestaurant(restID)
}

// UpdateStatus overwrites the status string. Any value is accepted;
// no transition rules are imposed.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if s.Feed != nil {
		s.Feed.Publish(order.RestaurantID, OrderEvent{Type: "order.status", Order: order})
	}
	return order, nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}
