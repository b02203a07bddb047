package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithAddresses loads the user together with the saved addresses,
// needed for checkout address dedup.
func (r *UserRepository) FindWithAddresses(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Addresses").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindWithFavorites(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Favorites").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) AddFavorite(user *entity.User, restaurant *entity.Restaurant) error {
	return r.DB.Model(user).Association("Favorites").Append(restaurant)
}

func (r *UserRepository) RemoveFavorite(user *entity.User, restaurant *entity.Restaurant) error {
	return r.DB.Model(user).Association("Favorites").Delete(restaurant)
}
