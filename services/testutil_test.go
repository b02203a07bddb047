package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Restaurant{}, &entity.Category{},
		&entity.IngredientCategory{}, &entity.IngredientsItem{},
		&entity.Food{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB, cart *CartService) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewAddressRepository(db),
		repository.NewUserRepository(db),
		repository.NewRestaurantRepository(db),
		cart,
	)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FullName: "Test User", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Open: true, RegistrationDate: time.Now()}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedFood(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int64) *entity.Food {
	t.Helper()
	f := &entity.Food{
		Name:         name,
		Price:        price,
		RestaurantID: restaurantID,
		Available:    true,
		CreationDate: time.Now(),
	}
	require.NoError(t, db.Create(f).Error)
	return f
}
