package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.GetCart(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

type addItemIn struct {
	FoodID      uint     `json:"foodId" binding:"required"`
	Quantity    int      `json:"quantity" binding:"required"`
	Ingredients []string `json:"ingredients"`
}

// PUT /cart/add
func (h *CartController) AddItem(c *gin.Context) {
	var req addItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddItem(utils.CurrentUserID(c), req.FoodID, req.Quantity, req.Ingredients)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type updateQtyIn struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// PUT /cart-item/update
// The quantity update is item-scoped; the total resync that follows keeps
// API readers from ever observing a stale cart total.
func (h *CartController) UpdateItemQuantity(c *gin.Context) {
	var req updateQtyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customerID := utils.CurrentUserID(c)
	item, err := h.Svc.UpdateItemQuantity(customerID, req.CartItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	if _, err := h.Svc.ResyncTotal(customerID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /cart-item/:id/remove
func (h *CartController) RemoveItem(c *gin.Context) {
	cart, err := h.Svc.RemoveItem(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	cart, err := h.Svc.ClearCart(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}
