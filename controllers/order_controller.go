package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type createOrderIn struct {
	RestaurantID    uint           `json:"restaurantId" binding:"required"`
	DeliveryAddress entity.Address `json:"deliveryAddress" binding:"required"`
}

// POST /order
// Checkout does not clear the cart; the client calls /cart/clear once it
// has confirmed the order.
func (h *OrderController) Create(c *gin.Context) {
	var req createOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.CreateOrder(utils.CurrentUserID(c), req.RestaurantID, req.DeliveryAddress)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /order/user
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.GetUserOrders(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /order/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.FindOrderByID(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /order/:id
func (h *OrderController) Cancel(c *gin.Context) {
	if err := h.Svc.CancelOrder(paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order cancelled"})
}
