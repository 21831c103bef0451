package services

import (
	"errors"
	"fmt"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/pkg/billing"
	"github.com/Mikjohns10/instabite-backend/repository"

	"gorm.io/gorm"
)

// BillingService generates the printable invoice for an order.
// Generation carries a deliberate side effect: the tax fields are
// recomputed from the order subtotal and persisted on every call.
type BillingService struct {
	OrderRepo      *repository.OrderRepository
	RestRepo       *repository.RestaurantRepository
	CurrencyPrefix string
}

func NewBillingService(
	orderRepo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	currencyPrefix string,
) *BillingService {
	return &BillingService{
		OrderRepo:      orderRepo,
		RestRepo:       restRepo,
		CurrencyPrefix: currencyPrefix,
	}
}

// GenerateBill renders the invoice for orderID, returning the document
// bytes and the suggested attachment filename.
func (s *BillingService) GenerateBill(orderID uint) ([]byte, string, error) {
	order, err := s.OrderRepo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, "", err
	}

	// fail fast before rendering against a missing seller
	var rest entity.Restaurant
	if err := s.RestRepo.DB.First(&rest, order.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("restaurant: %w", ErrNotFound)
		}
		return nil, "", err
	}

	gst, grand := billing.ComputeTax(order.TotalAmount)
	if err := s.OrderRepo.SaveBilling(order.ID, gst, grand); err != nil {
		return nil, "", err
	}
	order.GstAmount = gst
	order.GrandTotal = grand
	order.BillGenerated = true

	doc, err := billing.Render(order, &rest, billing.Options{CurrencyPrefix: s.CurrencyPrefix})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return doc, billing.Filename(order.OrderCode), nil
}
