package services

import (
	"errors"
	"time"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

// OrderService converts cart snapshots into orders and drives the order
// status afterwards. Orders are write-once except for the status field.
type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	AddressRepo *repository.AddressRepository
	UserRepo    *repository.UserRepository
	RestRepo    *repository.RestaurantRepository
	Cart        *CartService

	// optional listener for status changes (ws feed)
	OnStatusChange func(order *entity.Order)
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	addressRepo *repository.AddressRepository,
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
	cart *CartService,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		AddressRepo: addressRepo,
		UserRepo:    userRepo,
		RestRepo:    restRepo,
		Cart:        cart,
	}
}

// CreateOrder snapshots the customer's current cart into a new order:
// the delivery address is saved (deduplicated against the customer's
// known addresses), the restaurant resolved, every cart line copied into
// an independently owned order item, and the total frozen. The cart is
// deliberately NOT cleared here — checkout failure must never lose cart
// contents, so clearing is a separate explicit call.
func (s *OrderService) CreateOrder(customerID, restaurantID uint, deliveryAddress entity.Address) (*entity.Order, error) {
	user, err := s.UserRepo.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	cart, err := s.Cart.GetCart(customerID)
	if err != nil {
		return nil, err
	}

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// register the address unless the customer already has an equal one
		addr, err := s.AddressRepo.FindEqualForUser(tx, user.ID, deliveryAddress)
		if err != nil {
			return err
		}
		if addr == nil {
			deliveryAddress.UserID = user.ID
			if err := s.AddressRepo.Save(tx, &deliveryAddress); err != nil {
				return err
			}
			addr = &deliveryAddress
		}

		order := entity.Order{
			CustomerID:        user.ID,
			RestaurantID:      restaurantID,
			DeliveryAddressID: addr.ID,
			OrderStatus:       entity.OrderStatusPending,
			TotalItem:         len(cart.Items),
			TotalPrice:        AggregateCartTotal(cart.Items),
		}
		order.CreatedAt = time.Now()
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		// frozen copies — the order must never share rows with the cart
		for _, ci := range cart.Items {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				FoodID:      ci.FoodID,
				Quantity:    ci.Quantity,
				Ingredients: append(entity.StringList(nil), ci.Ingredients...),
				TotalPrice:  ci.TotalPrice,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrder moves the order to the given status token. Unknown tokens
// fail with ErrInvalidOrderStatus and leave the order untouched.
func (s *OrderService) UpdateOrder(orderID uint, status string) (*entity.Order, error) {
	order, err := s.FindOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if err := s.Repo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.OrderStatus = status
	if s.OnStatusChange != nil {
		s.OnStatusChange(order)
	}
	return order, nil
}

// CancelOrder permanently deletes the order and its items. Irreversible;
// no CANCELLED status is recorded.
func (s *OrderService) CancelOrder(orderID uint) error {
	order, err := s.FindOrderByID(orderID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, order)
	})
}

func (s *OrderService) GetUserOrders(customerID uint) ([]entity.Order, error) {
	return s.Repo.FindByCustomer(customerID)
}

// GetRestaurantOrders lists a restaurant's orders, optionally narrowed to
// an exact status match. The filter is applied after the fetch.
func (s *OrderService) GetRestaurantOrders(restaurantID uint, status string) ([]entity.Order, error) {
	orders, err := s.Repo.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}
	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderStatus == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *OrderService) FindOrderByID(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
