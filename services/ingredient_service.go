package services

import (
	"errors"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

type IngredientService struct {
	Repo     *repository.IngredientRepository
	RestRepo *repository.RestaurantRepository
}

func NewIngredientService(repo *repository.IngredientRepository, restRepo *repository.RestaurantRepository) *IngredientService {
	return &IngredientService{Repo: repo, RestRepo: restRepo}
}

func (s *IngredientService) CreateCategory(restaurantID uint, name string) (*entity.IngredientCategory, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	category := &entity.IngredientCategory{Name: name, RestaurantID: restaurantID}
	if err := s.Repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *IngredientService) FindCategoryByID(id uint) (*entity.IngredientCategory, error) {
	category, err := s.Repo.FindCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *IngredientService) RestaurantCategories(restaurantID uint) ([]entity.IngredientCategory, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	return s.Repo.FindCategoriesByRestaurant(restaurantID)
}

func (s *IngredientService) CreateItem(restaurantID uint, name string, categoryID uint) (*entity.IngredientsItem, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	if _, err := s.FindCategoryByID(categoryID); err != nil {
		return nil, err
	}
	item := &entity.IngredientsItem{Name: name, RestaurantID: restaurantID, CategoryID: categoryID, InStock: true}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *IngredientService) RestaurantItems(restaurantID uint) ([]entity.IngredientsItem, error) {
	return s.Repo.FindItemsByRestaurant(restaurantID)
}

// ToggleStock flips the in-stock flag of an ingredient item.
func (s *IngredientService) ToggleStock(itemID uint) (*entity.IngredientsItem, error) {
	item, err := s.Repo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	item.InStock = !item.InStock
	if err := s.Repo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}
