package services

import (
	"sync"
	"testing"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "lazy@test.dev")
	r := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, r.ID, "Carbonara", 1200)

	// no cart row before the first mutation
	var count int64
	db.Model(&entity.Cart{}).Where("customer_id = ?", customer.ID).Count(&count)
	require.Zero(t, count)

	item, err := svc.AddItem(customer.ID, food.ID, 2, []string{"parmesan"})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(2400), item.TotalPrice)

	cart, err := svc.GetCart(customer.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2400), cart.Total)
}

func TestCartService_AddItem_UnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "nofood@test.dev")

	_, err := svc.AddItem(customer.ID, 9999, 1, nil)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "badqty@test.dev")
	r := seedRestaurant(t, db, "Qty")
	food := seedFood(t, db, r.ID, "Soup", 500)

	_, err := svc.AddItem(customer.ID, food.ID, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.AddItem(customer.ID, food.ID, -2, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

// Adding the same food twice merges into one line; the first add's
// ingredient selection wins.
func TestCartService_AddItem_MergesByFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "merge@test.dev")
	r := seedRestaurant(t, db, "Burger Bar")
	food := seedFood(t, db, r.ID, "Cheeseburger", 900)

	_, err := svc.AddItem(customer.ID, food.ID, 2, []string{"pickles"})
	require.NoError(t, err)
	_, err = svc.AddItem(customer.ID, food.ID, 3, []string{"onions"})
	require.NoError(t, err)

	cart, err := svc.GetCart(customer.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(4500), cart.Items[0].TotalPrice)
	assert.Equal(t, entity.StringList{"pickles"}, cart.Items[0].Ingredients)
	assert.Equal(t, int64(4500), cart.Total)
}

// The cached total must equal the sum of line totals after any sequence
// of mutations.
func TestCartService_TotalNeverDesyncs(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "invariant@test.dev")
	r := seedRestaurant(t, db, "Mixed")
	a := seedFood(t, db, r.ID, "A", 1000)
	b := seedFood(t, db, r.ID, "B", 500)
	c := seedFood(t, db, r.ID, "C", 250)

	check := func() {
		t.Helper()
		var cart entity.Cart
		require.NoError(t, db.Preload("Items").Where("customer_id = ?", customer.ID).First(&cart).Error)
		assert.Equal(t, AggregateCartTotal(cart.Items), cart.Total)
	}

	_, err := svc.AddItem(customer.ID, a.ID, 1, nil)
	require.NoError(t, err)
	check()

	_, err = svc.AddItem(customer.ID, b.ID, 2, nil)
	require.NoError(t, err)
	check()

	_, err = svc.AddItem(customer.ID, a.ID, 4, nil)
	require.NoError(t, err)
	check()

	cart, err := svc.GetCart(customer.ID)
	require.NoError(t, err)
	_, err = svc.RemoveItem(customer.ID, cart.Items[0].ID)
	require.NoError(t, err)
	check()

	_, err = svc.AddItem(customer.ID, c.ID, 3, nil)
	require.NoError(t, err)
	check()

	_, err = svc.ClearCart(customer.ID)
	require.NoError(t, err)
	check()
}

// Concurrent adds for the same customer must serialize on the cart's
// mutex: no lost update, one merged line, the total matching the summed
// quantity.
func TestCartService_AddItem_ConcurrentSameCustomer(t *testing.T) {
	db := newTestDB(t)
	// sqlite is single-writer; one connection keeps the pre-lock food
	// reads from tripping over in-flight writes
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	svc := newCartService(db)
	customer := seedUser(t, db, "concurrent@test.dev")
	r := seedRestaurant(t, db, "Rush Hour")
	food := seedFood(t, db, r.ID, "Gyoza", 100)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddItem(customer.ID, food.ID, 1, nil)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	var cart entity.Cart
	require.NoError(t, db.Preload("Items").Where("customer_id = ?", customer.ID).First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, workers, cart.Items[0].Quantity)
	assert.Equal(t, int64(workers*100), cart.Items[0].TotalPrice)
	assert.Equal(t, int64(workers*100), cart.Total)
	assert.Equal(t, AggregateCartTotal(cart.Items), cart.Total)
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "update@test.dev")
	r := seedRestaurant(t, db, "Update")
	food := seedFood(t, db, r.ID, "Ramen", 1500)

	added, err := svc.AddItem(customer.ID, food.ID, 1, nil)
	require.NoError(t, err)

	item, err := svc.UpdateItemQuantity(customer.ID, added.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, int64(6000), item.TotalPrice)

	// item-scoped: the caller resyncs the cart total afterwards
	cart, err := svc.ResyncTotal(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), cart.Total)

	_, err = svc.UpdateItemQuantity(customer.ID, added.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.UpdateItemQuantity(customer.ID, 98765, 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

// An item id from another customer's cart must not be reachable: the
// update is rejected and the owning cart's line and total are untouched.
func TestCartService_UpdateItemQuantity_OtherCustomersItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	owner := seedUser(t, db, "owner@test.dev")
	other := seedUser(t, db, "other@test.dev")
	r := seedRestaurant(t, db, "Scoped")
	food := seedFood(t, db, r.ID, "Pho", 1000)

	item, err := svc.AddItem(owner.ID, food.ID, 1, nil)
	require.NoError(t, err)

	// no cart of their own yet
	_, err = svc.UpdateItemQuantity(other.ID, item.ID, 5)
	assert.ErrorIs(t, err, ErrCartNotFound)

	// with a cart of their own the foreign item still reads as not found
	_, err = svc.AddItem(other.ID, food.ID, 1, nil)
	require.NoError(t, err)
	_, err = svc.UpdateItemQuantity(other.ID, item.ID, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	var cart entity.Cart
	require.NoError(t, db.Preload("Items").Where("customer_id = ?", owner.ID).First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(1000), cart.Items[0].TotalPrice)
	assert.Equal(t, AggregateCartTotal(cart.Items), cart.Total)
	assert.Equal(t, int64(1000), cart.Total)
}

func TestCartService_RemoveItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "remove@test.dev")
	r := seedRestaurant(t, db, "Remove")
	a := seedFood(t, db, r.ID, "A", 1000)
	b := seedFood(t, db, r.ID, "B", 300)

	itemA, err := svc.AddItem(customer.ID, a.ID, 1, nil)
	require.NoError(t, err)
	_, err = svc.AddItem(customer.ID, b.ID, 2, nil)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(customer.ID, itemA.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(600), cart.Total)

	// removing again: item no longer in the cart
	_, err = svc.RemoveItem(customer.ID, itemA.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "nocart@test.dev")

	_, err := svc.RemoveItem(customer.ID, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_GetCart_EmptyForNewCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "fresh@test.dev")

	cart, err := svc.GetCart(customer.ID)
	require.NoError(t, err)
	assert.Zero(t, cart.ID) // not persisted
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)

	// still no row afterwards
	var count int64
	db.Model(&entity.Cart{}).Where("customer_id = ?", customer.ID).Count(&count)
	assert.Zero(t, count)
}

func TestCartService_ClearCart_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "clear@test.dev")
	r := seedRestaurant(t, db, "Clear")
	food := seedFood(t, db, r.ID, "Taco", 400)

	_, err := svc.AddItem(customer.ID, food.ID, 3, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		cart, err := svc.ClearCart(customer.ID)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, int64(0), cart.Total)
	}

	// the cart row itself survives a clear
	var count int64
	db.Model(&entity.Cart{}).Where("customer_id = ?", customer.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
