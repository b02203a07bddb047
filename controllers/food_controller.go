package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(s *services.FoodService) *FoodController { return &FoodController{Svc: s} }

// GET /food/restaurant/:id?vegetarian=true&seasonal=true&food_category=
func (h *FoodController) RestaurantMenu(c *gin.Context) {
	foods, err := h.Svc.RestaurantMenu(
		paramID(c, "id"),
		c.Query("vegetarian") == "true",
		c.Query("seasonal") == "true",
		c.Query("food_category"),
	)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /food/search?name=
func (h *FoodController) Search(c *gin.Context) {
	foods, err := h.Svc.Search(c.Query("name"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, foods)
}
