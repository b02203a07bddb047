package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

type FoodService struct {
	DB             *gorm.DB
	Repo           *repository.FoodRepository
	IngredientRepo *repository.IngredientRepository
}

func NewFoodService(db *gorm.DB, repo *repository.FoodRepository, ingredientRepo *repository.IngredientRepository) *FoodService {
	return &FoodService{DB: db, Repo: repo, IngredientRepo: ingredientRepo}
}

type CreateFoodIn struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required"`
	CategoryID  uint     `json:"categoryId"`
	Vegetarian  bool     `json:"vegetarian"`
	Seasonal    bool     `json:"seasonal"`
	Ingredients []string `json:"ingredients"`
}

// Create adds a food to the restaurant's menu. Ingredient names are
// linked to the restaurant's existing ingredient items when a
// case-insensitive match exists, otherwise created.
func (s *FoodService) Create(restaurantID uint, in *CreateFoodIn) (*entity.Food, error) {
	existing, err := s.IngredientRepo.FindItemsByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	var linked []entity.IngredientsItem
	for _, name := range in.Ingredients {
		var found *entity.IngredientsItem
		for i := range existing {
			if strings.EqualFold(existing[i].Name, name) {
				found = &existing[i]
				break
			}
		}
		if found != nil {
			linked = append(linked, *found)
			continue
		}
		item := entity.IngredientsItem{Name: name, RestaurantID: restaurantID, InStock: true}
		if err := s.IngredientRepo.CreateItem(&item); err != nil {
			return nil, err
		}
		existing = append(existing, item)
		linked = append(linked, item)
	}

	food := &entity.Food{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CategoryID:   in.CategoryID,
		RestaurantID: restaurantID,
		Vegetarian:   in.Vegetarian,
		Seasonal:     in.Seasonal,
		Available:    true,
		CreationDate: time.Now(),
		Ingredients:  linked,
	}
	if err := s.Repo.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Update(foodID uint, in *CreateFoodIn) (*entity.Food, error) {
	food, err := s.FindByID(foodID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		food.Name = in.Name
	}
	if in.Description != "" {
		food.Description = in.Description
	}
	if in.Price > 0 {
		food.Price = in.Price
	}
	if in.CategoryID != 0 {
		food.CategoryID = in.CategoryID
	}
	if err := s.Repo.Save(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Delete(foodID uint) error {
	food, err := s.FindByID(foodID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(food)
}

// RestaurantMenu lists a restaurant's foods with optional filters.
func (s *FoodService) RestaurantMenu(restaurantID uint, vegetarian, seasonal bool, category string) ([]entity.Food, error) {
	foods, err := s.Repo.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Food, 0, len(foods))
	for _, f := range foods {
		if vegetarian && !f.Vegetarian {
			continue
		}
		if seasonal && !f.Seasonal {
			continue
		}
		if category != "" && !strings.EqualFold(f.Category.Name, category) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *FoodService) Search(keyword string) ([]entity.Food, error) {
	return s.Repo.Search(keyword)
}

func (s *FoodService) FindByID(foodID uint) (*entity.Food, error) {
	food, err := s.Repo.FindByID(foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

// ToggleAvailability flips the availability flag.
func (s *FoodService) ToggleAvailability(foodID uint) (*entity.Food, error) {
	food, err := s.FindByID(foodID)
	if err != nil {
		return nil, err
	}
	food.Available = !food.Available
	if err := s.Repo.Save(food); err != nil {
		return nil, err
	}
	return food, nil
}
