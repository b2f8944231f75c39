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

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type checkoutReq struct {
	AddressID uint `json:"addressId" binding:"required"`
}

// POST /orders/checkout
// Creates the pending order from the cart and answers with the payment
// redirect URL.
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(uid, req.AddressID)
	switch {
	case err == nil:
		resp.Created(c, out)
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "cart is empty")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "address belongs to another user")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		// covers gateway failures: the order attempt was rolled back
		resp.ServerError(c, err)
	}
}

// GET /profile/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	out, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
