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

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

func (h *CatalogController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not your restaurant")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.BadRequest(c, err.Error())
	}
}

type categoryReq struct {
	Name string `json:"name" binding:"required"`
}

// POST /owner/menu/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(uid, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /owner/menu/categories/:id
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Svc.DeleteCategory(uid, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /owner/menu/products
func (h *CatalogController) CreateProduct(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(uid, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /owner/menu/products/:id
func (h *CatalogController) UpdateProduct(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.UpdateProduct(uid, uint(id), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /owner/menu/products/:id
func (h *CatalogController) DeleteProduct(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Svc.DeleteProduct(uid, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
