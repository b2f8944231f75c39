package controllers

import (
	"errors"
	"strconv"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/pkg/resp"
	"github.com/gustavogalazzo/YummyGo/services"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: s}
}

// GET /owner/restaurants/:id/orders
func (h *OwnerOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForRestaurant(uid, uint(restID), status, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /owner/restaurants/:id/orders/:oid
func (h *OwnerOrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	orderID, err := strconv.ParseUint(c.Param("oid"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	out, err := h.Svc.DetailForRestaurant(uid, uint(restID), uint(orderID))
	switch {
	case err == nil:
		resp.OK(c, out)
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not your restaurant")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}

// PATCH /owner/orders/:id/advance
// One forward step in the kitchen flow.
func (h *OwnerOrderController) Advance(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	next, err := h.Svc.Advance(uid, uint(orderID))
	switch {
	case err == nil:
		resp.OK(c, gin.H{"status": next})
	case errors.Is(err, services.ErrOrderFinal):
		// informational, not an error
		resp.OK(c, gin.H{"message": "order already in its final status"})
	case errors.Is(err, services.ErrNotAdvanceable):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not your restaurant")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}

// PATCH /owner/orders/:id/cancel
func (h *OwnerOrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	switch err := h.Svc.Cancel(uid, uint(orderID)); {
	case err == nil:
		resp.OK(c, gin.H{"status": entity.StatusCancelled})
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "only unpaid orders can be cancelled")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not your restaurant")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}
