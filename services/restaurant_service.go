package services

import (
	"errors"
	"time"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, userRepo *repository.UserRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, UserRepo: userRepo}
}

type CreateRestaurantIn struct {
	Name               string         `json:"name" binding:"required"`
	Description        string         `json:"description"`
	CuisineType        string         `json:"cuisineType"`
	OpeningHours       string         `json:"openingHours"`
	ContactInformation string         `json:"contactInformation"`
	Address            entity.Address `json:"address"`
}

func (s *RestaurantService) Create(ownerID uint, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		Name:               in.Name,
		Description:        in.Description,
		CuisineType:        in.CuisineType,
		OpeningHours:       in.OpeningHours,
		ContactInformation: in.ContactInformation,
		Address:            in.Address,
		OwnerID:            ownerID,
		Open:               true,
		RegistrationDate:   time.Now(),
	}
	if err := s.Repo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Update overwrites only the fields present in the request.
func (s *RestaurantService) Update(restaurantID uint, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	restaurant, err := s.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		restaurant.Name = in.Name
	}
	if in.Description != "" {
		restaurant.Description = in.Description
	}
	if in.CuisineType != "" {
		restaurant.CuisineType = in.CuisineType
	}
	if in.OpeningHours != "" {
		restaurant.OpeningHours = in.OpeningHours
	}
	if in.ContactInformation != "" {
		restaurant.ContactInformation = in.ContactInformation
	}
	if err := s.Repo.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) Delete(restaurantID uint) error {
	restaurant, err := s.FindByID(restaurantID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(restaurant)
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Search(keyword string) ([]entity.Restaurant, error) {
	return s.Repo.Search(keyword)
}

func (s *RestaurantService) FindByID(restaurantID uint) (*entity.Restaurant, error) {
	restaurant, err := s.Repo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	restaurant, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// ToggleOpen flips the open/closed flag.
func (s *RestaurantService) ToggleOpen(restaurantID uint) (*entity.Restaurant, error) {
	restaurant, err := s.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	restaurant.Open = !restaurant.Open
	if err := s.Repo.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ToggleFavorite adds the restaurant to the user's favorites, or removes
// it when already present.
func (s *RestaurantService) ToggleFavorite(userID, restaurantID uint) (*entity.User, error) {
	restaurant, err := s.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.FindWithFavorites(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	favorited := false
	for _, f := range user.Favorites {
		if f.ID == restaurantID {
			favorited = true
			break
		}
	}
	if favorited {
		err = s.UserRepo.RemoveFavorite(user, restaurant)
	} else {
		err = s.UserRepo.AddFavorite(user, restaurant)
	}
	if err != nil {
		return nil, err
	}
	return s.UserRepo.FindWithFavorites(userID)
}
