package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(food *entity.Food) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) Save(food *entity.Food) error {
	return r.DB.Save(food).Error
}

func (r *FoodRepository) Delete(food *entity.Food) error {
	return r.DB.Select("Ingredients").Delete(food).Error
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var food entity.Food
	if err := r.DB.Preload("Ingredients").First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) FindByRestaurant(restaurantID uint) ([]entity.Food, error) {
	var out []entity.Food
	err := r.DB.Preload("Ingredients").Preload("Category").
		Where("restaurant_id = ?", restaurantID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FoodRepository) Search(keyword string) ([]entity.Food, error) {
	var out []entity.Food
	like := "%" + keyword + "%"
	err := r.DB.
		Joins("LEFT JOIN categories ON categories.id = foods.category_id").
		Where("lower(foods.name) LIKE lower(?) OR lower(categories.name) LIKE lower(?)", like, like).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
