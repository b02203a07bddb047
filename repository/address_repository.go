package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

// AddressRepository persists delivery addresses for users.
type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) Save(tx *gorm.DB, addr *entity.Address) error {
	return tx.Save(addr).Error
}

func (r *AddressRepository) FindByUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	if err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindEqualForUser returns the stored address value-equal to addr, or nil.
func (r *AddressRepository) FindEqualForUser(tx *gorm.DB, userID uint, addr entity.Address) (*entity.Address, error) {
	var known []entity.Address
	if err := tx.Where("user_id = ?", userID).Find(&known).Error; err != nil {
		return nil, err
	}
	for i := range known {
		if known[i].EqualValue(addr) {
			return &known[i], nil
		}
	}
	return nil, nil
}
