package services

import (
	"errors"
	"strings"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

type UserService struct {
	DB          *gorm.DB
	Repo        *repository.UserRepository
	AddressRepo *repository.AddressRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository, addressRepo *repository.AddressRepository) *UserService {
	return &UserService{DB: db, Repo: repo, AddressRepo: addressRepo}
}

func (s *UserService) FindByID(userID uint) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateUserIn struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`

	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// UpdateProfile applies the non-empty profile fields; a street implies a
// new saved address.
func (s *UserService) UpdateProfile(userID uint, in *UpdateUserIn) (*entity.User, error) {
	if _, err := s.FindByID(userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FullName != "" {
		updates["full_name"] = strings.TrimSpace(in.FullName)
	}
	if in.Email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(in.Email))
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Street != "" {
			addr := entity.Address{
				UserID:     userID,
				Street:     in.Street,
				City:       in.City,
				State:      in.State,
				PostalCode: in.PostalCode,
				Country:    in.Country,
			}
			known, err := s.AddressRepo.FindEqualForUser(tx, userID, addr)
			if err != nil {
				return err
			}
			if known == nil {
				if err := s.AddressRepo.Save(tx, &addr); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindWithAddresses(userID)
}

func (s *UserService) Addresses(userID uint) ([]entity.Address, error) {
	if _, err := s.FindByID(userID); err != nil {
		return nil, err
	}
	return s.AddressRepo.FindByUser(userID)
}
