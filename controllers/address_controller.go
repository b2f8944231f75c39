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

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Svc: s}
}

// GET /profile/addresses
func (h *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /profile/addresses
func (h *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.Create(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// DELETE /profile/addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid address id")
		return
	}

	switch err := h.Svc.Delete(uid, uint(id)); {
	case err == nil:
		resp.OK(c, gin.H{"deleted": true})
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "address belongs to another user")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "address not found")
	default:
		resp.ServerError(c, err)
	}
}
