package controllers

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/pkg/resp"
	"github.com/gustavogalazzo/YummyGo/services"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	view, err := h.Svc.View(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

type cartAddReq struct {
	ProductID uint `json:"productId" binding:"required"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req cartAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reset, err := h.Svc.Add(uid, req.ProductID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "product not found")
		return
	case errors.Is(err, services.ErrProductUnavailable):
		resp.BadRequest(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	msg := "added to cart"
	if reset {
		msg = "cart was cleared: only one restaurant per order"
	}
	resp.Created(c, gin.H{"message": msg, "cartReset": reset})
}

type cartRemoveReq struct {
	ProductID uint `json:"productId" binding:"required"`
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req cartRemoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Remove(uid, req.ProductID); err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			// reported, not fatal
			resp.OK(c, gin.H{"message": "item was not in the cart"})
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Clear(uid)
	resp.OK(c, gin.H{"message": "cart cleared"})
}
