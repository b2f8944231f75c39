package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/repository"
	"github.com/gustavogalazzo/YummyGo/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGateway treats the webhook payload as the order ref and an empty
// signature header as a forgery.
type stubGateway struct{}

func (stubGateway) CreateCheckoutSession(orderRef string, items []payments.LineItem, successURL, cancelURL string) (string, error) {
	return "https://pay.example.com/session/" + orderRef, nil
}

func (stubGateway) VerifyEvent(payload []byte, sigHeader string) (payments.Event, error) {
	if sigHeader == "" {
		return payments.Event{}, payments.ErrBadSignature
	}
	return payments.Event{Type: payments.EventCheckoutCompleted, OrderRef: string(payload)}, nil
}

type webhookEnv struct {
	db     *gorm.DB
	router *gin.Engine
	order  entity.Order
	user   entity.User
}

func newWebhookEnv(t *testing.T) *webhookEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Restaurant{}, &entity.Order{}, &entity.OrderLine{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &webhookEnv{db: db}

	env.user = entity.User{Email: "ana@example.com", FullName: "Ana", Role: "customer", Tier: entity.TierBronze}
	if err := db.Create(&env.user).Error; err != nil {
		t.Fatal(err)
	}
	owner := entity.User{Email: "chef@example.com", FullName: "Chef", Role: "owner", Tier: entity.TierBronze}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatal(err)
	}
	rest := entity.Restaurant{Name: "Pizzaria", DeliveryFee: decimal.RequireFromString("5.00"), UserID: owner.ID, Active: true}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatal(err)
	}
	env.order = entity.Order{
		Ref: "ref-webhook", CustomerID: env.user.ID, RestaurantID: rest.ID,
		TotalPrice: decimal.RequireFromString("55.00"),
		Status:     entity.StatusPendingPayment,
	}
	if err := db.Create(&env.order).Error; err != nil {
		t.Fatal(err)
	}

	gw := stubGateway{}
	orders := services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartStore(),
		repository.NewProductRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewAddressRepository(db),
		repository.NewUserRepository(db),
		gw,
		services.LogNotifier{},
		"http://localhost:8000",
	)

	env.router = gin.New()
	env.router.POST("/payments/webhook", NewPaymentController(gw, orders).Webhook)
	return env
}

func (e *webhookEnv) post(t *testing.T, body, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *webhookEnv) orderStatus(t *testing.T) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	if err := e.db.First(&o, e.order.ID).Error; err != nil {
		t.Fatal(err)
	}
	return o.Status
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	env := newWebhookEnv(t)

	w := env.post(t, env.order.Ref, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := env.orderStatus(t); got != entity.StatusPendingPayment {
		t.Errorf("a rejected webhook must not move the order, got %s", got)
	}
}

func TestWebhookConfirmsOrder(t *testing.T) {
	env := newWebhookEnv(t)

	w := env.post(t, env.order.Ref, "t=1,v1=valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Confirmed bool `json:"confirmed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || !body.Data.Confirmed {
		t.Errorf("body = %s", w.Body.String())
	}
	if got := env.orderStatus(t); got != entity.StatusReceived {
		t.Errorf("status = %s, want Received", got)
	}

	// duplicate delivery: still a 200, confirmed=false, nothing redone
	w = env.post(t, env.order.Ref, "t=2,v1=valid")
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Confirmed {
		t.Error("duplicate webhook must report confirmed=false")
	}
}

func TestWebhookUnknownRef(t *testing.T) {
	env := newWebhookEnv(t)

	w := env.post(t, "no-such-ref", "t=1,v1=valid")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
