package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(restaurant *entity.Restaurant) error {
	return r.DB.Create(restaurant).Error
}

func (r *RestaurantRepository) Save(restaurant *entity.Restaurant) error {
	return r.DB.Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(restaurant *entity.Restaurant) error {
	return r.DB.Delete(restaurant).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.DB.Preload("Address").First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	if err := r.DB.Preload("Address").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches keyword against name, cuisine type and description.
func (r *RestaurantRepository) Search(keyword string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	like := "%" + keyword + "%"
	err := r.DB.
		Where("lower(name) LIKE lower(?) OR lower(cuisine_type) LIKE lower(?) OR lower(description) LIKE lower(?)",
			like, like, like).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
