package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) CreateCategory(category *entity.IngredientCategory) error {
	return r.DB.Create(category).Error
}

func (r *IngredientRepository) FindCategoryByID(id uint) (*entity.IngredientCategory, error) {
	var category entity.IngredientCategory
	if err := r.DB.Preload("Items").First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *IngredientRepository) FindCategoriesByRestaurant(restaurantID uint) ([]entity.IngredientCategory, error) {
	var out []entity.IngredientCategory
	err := r.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *IngredientRepository) CreateItem(item *entity.IngredientsItem) error {
	return r.DB.Create(item).Error
}

func (r *IngredientRepository) SaveItem(item *entity.IngredientsItem) error {
	return r.DB.Save(item).Error
}

func (r *IngredientRepository) FindItemByID(id uint) (*entity.IngredientsItem, error) {
	var item entity.IngredientsItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *IngredientRepository) FindItemsByRestaurant(restaurantID uint) ([]entity.IngredientsItem, error) {
	var out []entity.IngredientsItem
	if err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
