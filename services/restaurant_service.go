package services

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/repository"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

// List returns all accounts for catalog browsing. No pagination.
func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

type PaymentInfoIn struct {
	UpiID *string
	QrRef *string
	Gstin *string
}

// UpdatePaymentInfo applies a partial update; nil fields are left untouched.
func (s *RestaurantService) UpdatePaymentInfo(id uint, in PaymentInfoIn) (*entity.Restaurant, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.UpiID != nil {
		updates["upi_id"] = *in.UpiID
	}
	if in.QrRef != nil {
		updates["qr_ref"] = *in.QrRef
	}
	if in.Gstin != nil {
		updates["gstin"] = *in.Gstin
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateFields(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

type MenuItemIn struct {
	Name        string
	Price       int64
	Category    string
	Description string
	Available   *bool
}

// AddMenuItem appends to the menu and returns the full sequence.
func (s *RestaurantService) AddMenuItem(restID uint, in MenuItemIn) ([]entity.MenuItem, error) {
	if _, err := s.Get(restID); err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &entity.MenuItem{
		Name:         in.Name,
		Price:        in.Price,
		Category:     in.Category,
		Description:  in.Description,
		Available:    available,
		RestaurantID: restID,
	}
	if err := s.Repo.AddMenuItem(item); err != nil {
		return nil, err
	}
	return s.Repo.FindMenu(restID)
}

func (s *RestaurantService) ListMenu(restID uint) ([]entity.MenuItem, error) {
	if _, err := s.Get(restID); err != nil {
		return nil, err
	}
	return s.Repo.FindMenu(restID)
}

// PaymentQR renders the restaurant's UPI payment handle as a QR PNG.
func (s *RestaurantService) PaymentQR(restID uint) ([]byte, error) {
	rest, err := s.Get(restID)
	if err != nil {
		return nil, err
	}
	if rest.UpiID == "" {
		return nil, errors.New("restaurant has no UPI id")
	}
	payload := fmt.Sprintf("upi://pay?pa=%s&pn=%s", rest.UpiID, url.QueryEscape(rest.Name))
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
