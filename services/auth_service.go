package services

import (
	"errors"
	"strings"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles restaurant registration and credential checks.
type AuthService struct {
	restRepo *repository.RestaurantRepository
}

func NewAuthService(repo *repository.RestaurantRepository) *AuthService {
	return &AuthService{restRepo: repo}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
	UpiID    string
	QrRef    string
	Gstin    string
}

// Register creates a new restaurant account. Duplicate email fails.
func (s *AuthService) Register(in RegisterInput) (*entity.Restaurant, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.restRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	rest := &entity.Restaurant{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
		Password: string(hashed),
		UpiID:    in.UpiID,
		QrRef:    in.QrRef,
		Gstin:    in.Gstin,
	}

	if err := s.restRepo.Create(rest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return rest, nil
}

// Login verifies credentials against the stored hash.
func (s *AuthService) Login(email, password string) (*entity.Restaurant, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rest, err := s.restRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rest.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return rest, nil
}

func (s *AuthService) GetProfile(restID uint) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}
