package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// FindByCustomer loads the customer's cart with items and their foods.
// Returns gorm.ErrRecordNotFound when the customer has no cart yet; the
// service decides whether that is an error.
func (r *CartRepository) FindByCustomer(tx *gorm.DB, customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("customer_id = ?", customerID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Food").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate returns the customer's cart, creating an empty one (total 0)
// on first use.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, customerID uint) (*entity.Cart, error) {
	c, err := r.FindByCustomer(tx, customerID)
	if err == nil {
		return c, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	created := entity.Cart{CustomerID: customerID, Total: 0}
	if err := tx.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Delete(item).Error
}

func (r *CartRepository) DeleteItemsByCart(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) UpdateTotal(tx *gorm.DB, cartID uint, total int64) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}
