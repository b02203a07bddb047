package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
)

// AdminFoodController manages a restaurant's menu from the owner side.
type AdminFoodController struct {
	Svc     *services.FoodService
	RestSvc *services.RestaurantService
}

func NewAdminFoodController(s *services.FoodService, rs *services.RestaurantService) *AdminFoodController {
	return &AdminFoodController{Svc: s, RestSvc: rs}
}

// POST /admin/food — the target restaurant is the caller's own.
func (h *AdminFoodController) Create(c *gin.Context) {
	restaurant, err := h.RestSvc.FindByOwner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	var req services.CreateFoodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Create(restaurant.ID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, food)
}

// PUT /admin/food/:id
func (h *AdminFoodController) Update(c *gin.Context) {
	var req services.CreateFoodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Update(paramID(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, food)
}

// DELETE /admin/food/:id
func (h *AdminFoodController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "food deleted"})
}

// PUT /admin/food/:id/availability
func (h *AdminFoodController) ToggleAvailability(c *gin.Context) {
	food, err := h.Svc.ToggleAvailability(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, food)
}
