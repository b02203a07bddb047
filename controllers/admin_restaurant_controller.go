package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
)

// AdminRestaurantController is the owner-side restaurant management
// surface.
type AdminRestaurantController struct{ Svc *services.RestaurantService }

func NewAdminRestaurantController(s *services.RestaurantService) *AdminRestaurantController {
	return &AdminRestaurantController{Svc: s}
}

// POST /admin/restaurants
func (h *AdminRestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restaurant, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, restaurant)
}

// PUT /admin/restaurants/:id
func (h *AdminRestaurantController) Update(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restaurant, err := h.Svc.Update(paramID(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// DELETE /admin/restaurants/:id
func (h *AdminRestaurantController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}

// PUT /admin/restaurants/:id/status
func (h *AdminRestaurantController) ToggleOpen(c *gin.Context) {
	restaurant, err := h.Svc.ToggleOpen(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// GET /admin/restaurants/user
func (h *AdminRestaurantController) Mine(c *gin.Context) {
	restaurant, err := h.Svc.FindByOwner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurant)
}
