package controllers

import (
	"errors"
	"io"
	"log"
	"strconv"

	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/pkg/resp"
	"github.com/gustavogalazzo/YummyGo/services"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentController handles everything that comes back from the payment
// processor: the signed webhook and the customer's return/cancel
// callbacks.
type PaymentController struct {
	Gateway payments.Gateway
	Orders  *services.OrderService
}

func NewPaymentController(gateway payments.Gateway, orders *services.OrderService) *PaymentController {
	return &PaymentController{Gateway: gateway, Orders: orders}
}

// POST /payments/webhook
// Unauthenticated route; trust comes from the event signature alone.
func (h *PaymentController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		resp.BadRequest(c, "cannot read payload")
		return
	}

	event, err := h.Gateway.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		log.Printf("webhook rejected: %v", err)
		resp.BadRequest(c, "signature verification failed")
		return
	}

	if event.Type != payments.EventCheckoutCompleted {
		// Other event types are acknowledged and ignored.
		resp.OK(c, gin.H{"received": true})
		return
	}

	confirmed, err := h.Orders.ConfirmPaymentByRef(event.OrderRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("webhook for unknown order ref %q", event.OrderRef)
			resp.NotFound(c, "unknown order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	// confirmed=false means a duplicate signal: still a 200, nothing to redo.
	resp.OK(c, gin.H{"received": true, "confirmed": confirmed})
}

// GET /orders/:id/success
// Return-from-payment fallback. Races the webhook; whichever lands first
// wins the guarded transition, the other is a no-op.
func (h *PaymentController) Success(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	// The callback must come from the order's customer.
	if _, err := h.Orders.Repo.GetOrderForUser(uid, uint(orderID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	confirmed, err := h.Orders.ConfirmPayment(uint(orderID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	msg := "payment already confirmed"
	if confirmed {
		msg = "payment confirmed, the restaurant has your order"
	}
	resp.OK(c, gin.H{"message": msg})
}

// GET /orders/cancel
// Nothing is mutated; the cart stays as it was so the customer can retry.
func (h *PaymentController) Cancel(c *gin.Context) {
	resp.OK(c, gin.H{"message": "payment cancelled, your cart is untouched"})
}
