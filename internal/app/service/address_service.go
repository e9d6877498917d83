package service

import (
	"errors"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrAddressNotFound    = errors.New("address not found")
	ErrNotAddressOwner    = errors.New("address belongs to another user")
	ErrInvalidAddressType = errors.New("invalid address type")
)

// AddressInput 배송지 생성/수정 입력
type AddressInput struct {
	Type       model.AddressType `json:"type"`
	FirstName  string            `json:"first_name" binding:"required"`
	LastName   string            `json:"last_name" binding:"required"`
	Company    string            `json:"company"`
	Address1   string            `json:"address1" binding:"required"`
	Address2   string            `json:"address2"`
	City       string            `json:"city" binding:"required"`
	State      string            `json:"state"`
	PostalCode string            `json:"postal_code" binding:"required"`
	Country    string            `json:"country" binding:"required"`
	Phone      string            `json:"phone"`
	IsDefault  bool              `json:"is_default"`
}

type AddressService interface {
	GetUserAddresses(userID uint) ([]model.Address, error)
	CreateAddress(userID uint, input AddressInput) (*model.Address, error)
	UpdateAddress(addressID, userID uint, input AddressInput) (*model.Address, error)
	DeleteAddress(addressID, userID uint) error
	SetDefaultAddress(addressID, userID uint) error
}

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) GetUserAddresses(userID uint) ([]model.Address, error) {
	return s.addressRepo.FindByUserID(userID)
}

// CreateAddress adds a new address for the user. The user's first address
// becomes the default automatically; an explicit is_default displaces the
// previous default.
func (s *addressService) CreateAddress(userID uint, input AddressInput) (*model.Address, error) {
	addressType := input.Type
	if addressType == "" {
		addressType = model.AddressTypeShipping
	}
	if addressType != model.AddressTypeShipping && addressType != model.AddressTypeBilling {
		return nil, ErrInvalidAddressType
	}

	existing, err := s.addressRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	address := &model.Address{
		UserID:     userID,
		Type:       addressType,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Company:    input.Company,
		Address1:   input.Address1,
		Address2:   input.Address2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		Phone:      input.Phone,
		IsDefault:  input.IsDefault || len(existing) == 0,
	}

	if address.IsDefault {
		if err := s.addressRepo.SetDefault(userID, 0); err != nil {
			return nil, err
		}
	}

	if err := s.addressRepo.Create(address); err != nil {
		logger.Error("Failed to create address", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Address created", map[string]interface{}{
		"address_id": address.ID,
		"user_id":    userID,
		"is_default": address.IsDefault,
	})
	return address, nil
}

func (s *addressService) UpdateAddress(addressID, userID uint, input AddressInput) (*model.Address, error) {
	address, err := s.findOwnedAddress(addressID, userID)
	if err != nil {
		return nil, err
	}

	if input.Type != "" {
		if input.Type != model.AddressTypeShipping && input.Type != model.AddressTypeBilling {
			return nil, ErrInvalidAddressType
		}
		address.Type = input.Type
	}
	address.FirstName = input.FirstName
	address.LastName = input.LastName
	address.Company = input.Company
	address.Address1 = input.Address1
	address.Address2 = input.Address2
	address.City = input.City
	address.State = input.State
	address.PostalCode = input.PostalCode
	address.Country = input.Country
	address.Phone = input.Phone

	if input.IsDefault && !address.IsDefault {
		if err := s.addressRepo.SetDefault(userID, addressID); err != nil {
			return nil, err
		}
		address.IsDefault = true
	}

	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress removes the user's address. Deleting the default address
// promotes the most recent remaining one.
func (s *addressService) DeleteAddress(addressID, userID uint) error {
	address, err := s.findOwnedAddress(addressID, userID)
	if err != nil {
		return err
	}

	if err := s.addressRepo.Delete(addressID); err != nil {
		return err
	}

	if address.IsDefault {
		remaining, err := s.addressRepo.FindByUserID(userID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			if err := s.addressRepo.SetDefault(userID, remaining[0].ID); err != nil {
				return err
			}
		}
	}

	logger.Info("Address deleted", map[string]interface{}{
		"address_id": addressID,
		"user_id":    userID,
	})
	return nil
}

func (s *addressService) SetDefaultAddress(addressID, userID uint) error {
	if _, err := s.findOwnedAddress(addressID, userID); err != nil {
		return err
	}
	return s.addressRepo.SetDefault(userID, addressID)
}

func (s *addressService) findOwnedAddress(addressID, userID uint) (*model.Address, error) {
	address, err := s.addressRepo.FindByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, ErrNotAddressOwner
	}
	return address, nil
}
