package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//
// ---------- shared fixtures ----------
//

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Restaurant{},
		&entity.Category{}, &entity.Product{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db    *gorm.DB
	store *repository.CartStore

	customer   entity.User
	owner      entity.User
	address    entity.Address
	restaurant entity.Restaurant
	productX   entity.Product
	productY   entity.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testDB(t)
	f := &fixture{db: db, store: repository.NewCartStore()}

	f.customer = entity.User{Email: "ana@example.com", FullName: "Ana Souza", Role: "customer", Tier: entity.TierBronze}
	f.owner = entity.User{Email: "chef@example.com", FullName: "Chef Lima", Role: "owner", Tier: entity.TierBronze}
	if err := db.Create(&f.customer).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&f.owner).Error; err != nil {
		t.Fatal(err)
	}

	f.address = entity.Address{
		Street: "Rua das Flores", Number: "100", District: "Centro",
		City: "Sao Paulo", State: "SP", ZipCode: "01000-000",
		UserID: f.customer.ID,
	}
	if err := db.Create(&f.address).Error; err != nil {
		t.Fatal(err)
	}

	f.restaurant = entity.Restaurant{
		Name:        "Pizzaria Teste",
		DeliveryFee: dec("5.00"),
		UserID:      f.owner.ID,
		Active:      true,
	}
	if err := db.Create(&f.restaurant).Error; err != nil {
		t.Fatal(err)
	}

	cat := entity.Category{Name: "Pizzas", RestaurantID: f.restaurant.ID}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}

	f.productX = entity.Product{Name: "Margherita", Price: dec("20.00"), Available: true, CategoryID: cat.ID, RestaurantID: f.restaurant.ID}
	f.productY = entity.Product{Name: "Guarana", Price: dec("10.00"), Available: true, CategoryID: cat.ID, RestaurantID: f.restaurant.ID}
	if err := db.Create(&f.productX).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&f.productY).Error; err != nil {
		t.Fatal(err)
	}

	return f
}

func (f *fixture) cartService() *CartService {
	return NewCartService(f.store, repository.NewProductRepository(f.db))
}

func (f *fixture) orderService(gw *fakeGateway) *OrderService {
	return NewOrderService(
		f.db,
		repository.NewOrderRepository(f.db),
		f.store,
		repository.NewProductRepository(f.db),
		repository.NewRestaurantRepository(f.db),
		repository.NewAddressRepository(f.db),
		repository.NewUserRepository(f.db),
		gw,
		LogNotifier{},
		"http://localhost:8000",
	)
}

// fillCart puts 2x productX + 1x productY in the customer's cart
// (scenario: subtotal 50.00, fee 5.00).
func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	svc := f.cartService()
	for _, id := range []uint{f.productX.ID, f.productX.ID, f.productY.ID} {
		if _, err := svc.Add(f.customer.ID, id); err != nil {
			t.Fatalf("add to cart: %v", err)
		}
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

//
// ---------- fake settlement gateway ----------
//

type fakeGateway struct {
	sessions  int
	lastRef   string
	lastItems []payments.LineItem
	failWith  error
}

func (g *fakeGateway) CreateCheckoutSession(orderRef string, items []payments.LineItem, successURL, cancelURL string) (string, error) {
	if g.failWith != nil {
		return "", g.failWith
	}
	g.sessions++
	g.lastRef = orderRef
	g.lastItems = items
	return "https://pay.example.com/session/" + orderRef, nil
}

func (g *fakeGateway) VerifyEvent(payload []byte, sigHeader string) (payments.Event, error) {
	if sigHeader == "" {
		return payments.Event{}, payments.ErrBadSignature
	}
	return payments.Event{Type: payments.EventCheckoutCompleted, OrderRef: string(payload)}, nil
}
