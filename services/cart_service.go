package services

import (
	"errors"
	"sync"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"

	"gorm.io/gorm"
)

// CartService owns per-customer cart state. Every operation resolves the
// cart by customer identity, never by cart id, so one customer can never
// reach another's cart. Each mutation recomputes the cart total as a full
// aggregate over the current items inside the same transaction — the
// total is never adjusted incrementally.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository

	// one mutex per customer serializes the cart's read-modify-write
	locks sync.Map
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

func (s *CartService) lock(customerID uint) *sync.Mutex {
	m, _ := s.locks.LoadOrStore(customerID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// AddItem puts quantity of a food into the customer's cart, creating the
// cart on first use. Adding a food already in the cart merges into the
// existing line: quantity is incremented and the line total recomputed.
// The merge key is food identity only — the first add's ingredient
// selection wins.
func (s *CartService) AddItem(customerID, foodID uint, quantity int, ingredients []string) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	food, err := s.FoodRepo.FindByID(foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	mu := s.lock(customerID)
	mu.Lock()
	defer mu.Unlock()

	var out *entity.CartItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, customerID)
		if err != nil {
			return err
		}

		var line *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].FoodID == foodID {
				line = &cart.Items[i]
				break
			}
		}

		if line != nil {
			line.Quantity += quantity
			line.TotalPrice, err = LineTotal(food.Price, line.Quantity)
			if err != nil {
				return err
			}
			if err := s.CartRepo.SaveItem(tx, line); err != nil {
				return err
			}
		} else {
			total, err := LineTotal(food.Price, quantity)
			if err != nil {
				return err
			}
			line = &entity.CartItem{
				CartID:      cart.ID,
				FoodID:      food.ID,
				Quantity:    quantity,
				Ingredients: entity.StringList(ingredients),
				TotalPrice:  total,
			}
			if err := s.CartRepo.CreateItem(tx, line); err != nil {
				return err
			}
		}

		if err := s.recomputeTotal(tx, cart.ID, customerID); err != nil {
			return err
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateItemQuantity sets the item's quantity and recomputes its line
// total from the food price. Intentionally item-scoped: the caller is
// responsible for a subsequent cart total resync. The item must live in
// the calling customer's own cart; an item id from another cart reads as
// not found.
func (s *CartService) UpdateItemQuantity(customerID, cartItemID uint, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	mu := s.lock(customerID)
	mu.Lock()
	defer mu.Unlock()

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByCustomer(tx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var item *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].ID == cartItemID {
				item = &cart.Items[i]
				break
			}
		}
		if item == nil {
			return ErrCartItemNotFound
		}

		item.Quantity = quantity
		item.TotalPrice, err = LineTotal(item.Food.Price, quantity)
		if err != nil {
			return err
		}
		if err := s.CartRepo.SaveItem(tx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem drops the item from the customer's cart and returns the cart
// with its total recomputed.
func (s *CartService) RemoveItem(customerID, cartItemID uint) (*entity.Cart, error) {
	mu := s.lock(customerID)
	mu.Lock()
	defer mu.Unlock()

	var out *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByCustomer(tx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var item *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].ID == cartItemID {
				item = &cart.Items[i]
				break
			}
		}
		if item == nil {
			return ErrCartItemNotFound
		}

		if err := s.CartRepo.DeleteItem(tx, item); err != nil {
			return err
		}
		if err := s.recomputeTotal(tx, cart.ID, customerID); err != nil {
			return err
		}

		out, err = s.CartRepo.FindByCustomer(tx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCart returns the customer's cart with its total freshly recomputed
// from the current items. A customer without a cart gets a fresh empty,
// unpersisted cart rather than an error.
func (s *CartService) GetCart(customerID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.FindByCustomer(s.DB, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{CustomerID: customerID, Total: 0}, nil
		}
		return nil, err
	}
	cart.Total = AggregateCartTotal(cart.Items)
	return cart, nil
}

// ResyncTotal recomputes and persists the cart total from current items.
// Paired with the item-scoped UpdateItemQuantity.
func (s *CartService) ResyncTotal(customerID uint) (*entity.Cart, error) {
	mu := s.lock(customerID)
	mu.Lock()
	defer mu.Unlock()

	var out *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByCustomer(tx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		if err := s.recomputeTotal(tx, cart.ID, customerID); err != nil {
			return err
		}
		out, err = s.CartRepo.FindByCustomer(tx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearCart empties the customer's cart and zeroes its total. Calling it
// on an already empty cart is a no-op. The cart row itself survives.
func (s *CartService) ClearCart(customerID uint) (*entity.Cart, error) {
	mu := s.lock(customerID)
	mu.Lock()
	defer mu.Unlock()

	var out *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, customerID)
		if err != nil {
			return err
		}
		if err := s.CartRepo.DeleteItemsByCart(tx, cart.ID); err != nil {
			return err
		}
		if err := s.CartRepo.UpdateTotal(tx, cart.ID, 0); err != nil {
			return err
		}
		out, err = s.CartRepo.FindByCustomer(tx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// recomputeTotal reads the item list back after the mutation and writes
// the full aggregate, never an incremental adjustment.
func (s *CartService) recomputeTotal(tx *gorm.DB, cartID, customerID uint) error {
	cart, err := s.CartRepo.FindByCustomer(tx, customerID)
	if err != nil {
		return err
	}
	return s.CartRepo.UpdateTotal(tx, cartID, AggregateCartTotal(cart.Items))
}
