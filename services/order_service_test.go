package services

import (
	"testing"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() entity.Address {
	return entity.Address{
		Street:     "12 Main St",
		City:       "Colombo",
		State:      "Western",
		PostalCode: "00100",
		Country:    "LK",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "order@test.dev")
	r := seedRestaurant(t, db, "Curry House")
	a := seedFood(t, db, r.ID, "Rice & Curry", 1000)
	b := seedFood(t, db, r.ID, "Kottu", 500)

	_, err := cartSvc.AddItem(customer.ID, a.ID, 2, []string{"extra gravy"})
	require.NoError(t, err)
	_, err = cartSvc.AddItem(customer.ID, b.ID, 1, nil)
	require.NoError(t, err)

	order, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, r.ID, order.RestaurantID)
	assert.Equal(t, 2, order.TotalItem)
	assert.Equal(t, int64(2500), order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.Equal(t, entity.StringList{"extra gravy"}, order.Items[0].Ingredients)

	// checkout must not clear the cart
	cart, err := cartSvc.GetCart(customer.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(2500), cart.Total)

	// the order shows up in the restaurant's history
	history, err := svc.GetRestaurantOrders(r.ID, "")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestOrderService_CreateOrder_UnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)
	customer := seedUser(t, db, "norest@test.dev")

	_, err := svc.CreateOrder(customer.ID, 4242, testAddress())
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

// Mutating or clearing the cart after checkout must not touch the placed
// order's items or total.
func TestOrderService_SnapshotIsolation(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "snapshot@test.dev")
	r := seedRestaurant(t, db, "Snapshot")
	a := seedFood(t, db, r.ID, "Pizza", 2000)
	b := seedFood(t, db, r.ID, "Garlic Bread", 600)

	_, err := cartSvc.AddItem(customer.ID, a.ID, 1, []string{"olives"})
	require.NoError(t, err)

	order, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)

	// mutate the source cart in every way
	_, err = cartSvc.AddItem(customer.ID, a.ID, 5, nil)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(customer.ID, b.ID, 2, nil)
	require.NoError(t, err)
	_, err = cartSvc.ClearCart(customer.ID)
	require.NoError(t, err)

	reloaded, err := svc.FindOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), reloaded.TotalPrice)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 1, reloaded.Items[0].Quantity)
	assert.Equal(t, int64(2000), reloaded.Items[0].TotalPrice)
	assert.Equal(t, entity.StringList{"olives"}, reloaded.Items[0].Ingredients)
}

// Checkout registers the delivery address once per distinct value.
func TestOrderService_AddressDedup(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "address@test.dev")
	r := seedRestaurant(t, db, "Addr")
	food := seedFood(t, db, r.ID, "Wrap", 700)

	_, err := cartSvc.AddItem(customer.ID, food.ID, 1, nil)
	require.NoError(t, err)
	_, err = svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)

	// same address, different case and spacing
	again := testAddress()
	again.Street = "  12 MAIN st "
	_, err = svc.CreateOrder(customer.ID, r.ID, again)
	require.NoError(t, err)

	var count int64
	db.Model(&entity.Address{}).Where("user_id = ?", customer.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// a genuinely new address is appended
	other := testAddress()
	other.Street = "99 Side Rd"
	_, err = svc.CreateOrder(customer.ID, r.ID, other)
	require.NoError(t, err)
	db.Model(&entity.Address{}).Where("user_id = ?", customer.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "status@test.dev")
	r := seedRestaurant(t, db, "Status")
	food := seedFood(t, db, r.ID, "Noodles", 800)

	_, err := cartSvc.AddItem(customer.ID, food.ID, 1, nil)
	require.NoError(t, err)
	order, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)

	var published []string
	svc.OnStatusChange = func(o *entity.Order) { published = append(published, o.OrderStatus) }

	for _, status := range []string{
		entity.OrderStatusOutForDelivery,
		entity.OrderStatusDelivered,
		entity.OrderStatusCompleted,
		entity.OrderStatusPending,
	} {
		updated, err := svc.UpdateOrder(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.OrderStatus)
	}
	assert.Len(t, published, 4)

	// unknown token: rejected, status untouched
	_, err = svc.UpdateOrder(order.ID, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	reloaded, err := svc.FindOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, reloaded.OrderStatus)

	_, err = svc.UpdateOrder(31337, entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_CancelOrder_HardDeletes(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "cancel@test.dev")
	r := seedRestaurant(t, db, "Cancel")
	food := seedFood(t, db, r.ID, "Salad", 600)

	_, err := cartSvc.AddItem(customer.ID, food.ID, 1, nil)
	require.NoError(t, err)
	order, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(order.ID))

	_, err = svc.FindOrderByID(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// rows are gone, not soft-deleted
	var count int64
	db.Unscoped().Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count)
	assert.Zero(t, count)
	db.Unscoped().Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.CancelOrder(order.ID), ErrOrderNotFound)
}

func TestOrderService_RestaurantOrders_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "filter@test.dev")
	r := seedRestaurant(t, db, "Filter")
	food := seedFood(t, db, r.ID, "Dosa", 450)

	var orders []*entity.Order
	for i := 0; i < 3; i++ {
		_, err := cartSvc.AddItem(customer.ID, food.ID, 1, nil)
		require.NoError(t, err)
		o, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
		require.NoError(t, err)
		orders = append(orders, o)
		_, err = cartSvc.ClearCart(customer.ID)
		require.NoError(t, err)
	}
	_, err := svc.UpdateOrder(orders[1].ID, entity.OrderStatusDelivered)
	require.NoError(t, err)

	all, err := svc.GetRestaurantOrders(r.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	delivered, err := svc.GetRestaurantOrders(r.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, orders[1].ID, delivered[0].ID)

	pending, err := svc.GetRestaurantOrders(r.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

// Full customer journey: add, merge, second food,
// checkout, transitions.
func TestOrderService_EndToEnd(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db, cartSvc)

	customer := seedUser(t, db, "e2e@test.dev")
	r := seedRestaurant(t, db, "E2E")
	foodA := seedFood(t, db, r.ID, "A", 10)
	foodB := seedFood(t, db, r.ID, "B", 5)

	_, err := cartSvc.AddItem(customer.ID, foodA.ID, 2, nil)
	require.NoError(t, err)
	cart, err := cartSvc.GetCart(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), cart.Total)

	_, err = cartSvc.AddItem(customer.ID, foodA.ID, 1, nil)
	require.NoError(t, err)
	cart, err = cartSvc.GetCart(customer.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(30), cart.Total)

	_, err = cartSvc.AddItem(customer.ID, foodB.ID, 1, nil)
	require.NoError(t, err)
	cart, err = cartSvc.GetCart(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(35), cart.Total)

	order, err := svc.CreateOrder(customer.ID, r.ID, testAddress())
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, int64(35), order.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)

	updated, err := svc.UpdateOrder(order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.OrderStatus)

	_, err = svc.UpdateOrder(order.ID, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	reloaded, err := svc.FindOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, reloaded.OrderStatus)
}
