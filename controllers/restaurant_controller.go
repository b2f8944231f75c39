package controllers

import (
	"errors"
	"strconv"

	"github.com/gustavogalazzo/YummyGo/pkg/resp"
	"github.com/gustavogalazzo/YummyGo/services"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/search?query=
func (h *RestaurantController) Search(c *gin.Context) {
	q := c.Query("query")
	if q == "" {
		resp.BadRequest(c, "query is required")
		return
	}
	out, err := h.Svc.Search(q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /owner/restaurants
func (h *RestaurantController) Register(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.RegisterRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Register(uid, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rest)
}

// GET /owner/restaurant
func (h *RestaurantController) Mine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rest, err := h.Svc.ForOwner(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "no restaurant registered")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
