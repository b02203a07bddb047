package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct{ Svc *services.IngredientService }

func NewIngredientController(s *services.IngredientService) *IngredientController {
	return &IngredientController{Svc: s}
}

type createIngredientCategoryIn struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

// POST /admin/ingredients/category
func (h *IngredientController) CreateCategory(c *gin.Context) {
	var req createIngredientCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := h.Svc.CreateCategory(req.RestaurantID, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, category)
}

type createIngredientItemIn struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
}

// POST /admin/ingredients
func (h *IngredientController) CreateItem(c *gin.Context) {
	var req createIngredientItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(req.RestaurantID, req.Name, req.CategoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /admin/ingredients/restaurant/:id/category
func (h *IngredientController) RestaurantCategories(c *gin.Context) {
	categories, err := h.Svc.RestaurantCategories(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /admin/ingredients/restaurant/:id
func (h *IngredientController) RestaurantItems(c *gin.Context) {
	items, err := h.Svc.RestaurantItems(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// PUT /admin/ingredients/:id/stock
func (h *IngredientController) ToggleStock(c *gin.Context) {
	item, err := h.Svc.ToggleStock(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
