package repository

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Food").
		Preload("DeliveryAddress").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByCustomer(customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryAddress").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepository) FindByRestaurant(restaurantID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryAddress").
		Where("restaurant_id = ?", restaurantID).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus writes the single status field, nothing else.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("order_status", status).Error
}

// Delete removes the order and its items permanently.
func (r *OrderRepository) Delete(tx *gorm.DB, order *entity.Order) error {
	if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(order).Error
}
