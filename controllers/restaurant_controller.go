package controllers

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/search?keyword=
func (h *RestaurantController) Search(c *gin.Context) {
	restaurants, err := h.Svc.Search(c.Query("keyword"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	restaurant, err := h.Svc.FindByID(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// PUT /restaurants/:id/add-favorites
func (h *RestaurantController) ToggleFavorite(c *gin.Context) {
	user, err := h.Svc.ToggleFavorite(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user.Favorites)
}
