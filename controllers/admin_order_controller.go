package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"

	"github.com/gin-gonic/gin"
)

// AdminOrderController serves the restaurant-side order views.
type AdminOrderController struct{ Svc *services.OrderService }

func NewAdminOrderController(s *services.OrderService) *AdminOrderController {
	return &AdminOrderController{Svc: s}
}

// GET /admin/order/restaurant/:id?order_status=PENDING
func (h *AdminOrderController) ListForRestaurant(c *gin.Context) {
	orders, err := h.Svc.GetRestaurantOrders(paramID(c, "id"), c.Query("order_status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /admin/order/:id/:orderStatus
func (h *AdminOrderController) UpdateStatus(c *gin.Context) {
	order, err := h.Svc.UpdateOrder(paramID(c, "id"), c.Param("orderStatus"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
