package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/repository"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrForbidden = errors.New("forbidden")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Store    *repository.CartStore
	Products *repository.ProductRepository
	RestRepo *repository.RestaurantRepository
	AddrRepo *repository.AddressRepository
	UserRepo *repository.UserRepository

	Gateway  payments.Gateway
	Points   *Gamification
	Notifier Notifier
	BaseURL  string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	store *repository.CartStore,
	products *repository.ProductRepository,
	restRepo *repository.RestaurantRepository,
	addrRepo *repository.AddressRepository,
	userRepo *repository.UserRepository,
	gateway payments.Gateway,
	notifier Notifier,
	baseURL string,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, Store: store,
		Products: products, RestRepo: restRepo, AddrRepo: addrRepo, UserRepo: userRepo,
		Gateway: gateway, Points: NewGamification(userRepo), Notifier: notifier,
		BaseURL: baseURL,
	}
}

// ----- Checkout -----

type CheckoutOut struct {
	OrderID     uint   `json:"orderId"`
	Ref         string `json:"ref"`
	RedirectURL string `json:"redirectUrl"`
}

// Checkout turns the cart into a PendingPayment order and hands the
// customer to the payment processor. Order, lines and the checkout session
// stand or fall together: a gateway failure rolls the whole attempt back,
// so no orphan pending order is left behind. The cart survives until the
// payment is confirmed.
func (s *OrderService) Checkout(userID, addressID uint) (*CheckoutOut, error) {
	cart := s.Store.Get(userID)
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.RestRepo.FindByID(cart.RestaurantID)
	if err != nil {
		return nil, err
	}
	address, err := s.AddrRepo.FindByID(addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, ErrForbidden
	}

	ids := make([]uint, 0, len(cart.Items))
	for id := range cart.Items {
		ids = append(ids, id)
	}
	products, err := s.Products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	snap := BuildSnapshot(products, cart.Items, restaurant.DeliveryFee, user.Tier)
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Ref:             uuid.NewString(),
			CustomerID:      userID,
			RestaurantID:    restaurant.ID,
			TotalPrice:      snap.Total,
			Status:          entity.StatusPendingPayment,
			DeliveryAddress: address.Snapshot(),
			PaymentMethod:   entity.PaymentCard,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, line := range snap.Lines {
			ol := entity.OrderLine{
				OrderID:             order.ID,
				ProductID:           line.Product.ID,
				Quantity:            line.Quantity,
				UnitPriceAtPurchase: line.Product.Price,
			}
			if err := s.Repo.CreateOrderLine(tx, &ol); err != nil {
				return err
			}
		}

		successURL := fmt.Sprintf("%s/orders/%d/success", s.BaseURL, order.ID)
		cancelURL := fmt.Sprintf("%s/orders/cancel", s.BaseURL)
		url, err := s.Gateway.CreateCheckoutSession(order.Ref, snap.PaymentItems, successURL, cancelURL)
		if err != nil {
			return fmt.Errorf("could not start payment: %w", err)
		}

		out = CheckoutOut{OrderID: order.ID, Ref: order.Ref, RedirectURL: url}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Payment confirmation -----

// ConfirmPayment executes the PendingPayment -> Received transition.
// The guard is a conditional UPDATE on the prior status, so the webhook
// and the return callback can both call this and only one of them performs
// the side effects: PIN generation, point award, cart clear, notification.
// The duplicate call is a no-op and returns confirmed=false.
func (s *OrderService) ConfirmPayment(orderID uint) (confirmed bool, err error) {
	pin := utils.DeliveryPin()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.ConfirmGuard(tx, orderID, pin)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Already confirmed, cancelled, or unknown id. Distinguish only
			// the unknown id; everything else is the defined no-op.
			var o entity.Order
			if err := tx.First(&o, orderID).Error; err != nil {
				return err
			}
			return nil
		}

		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			return err
		}
		if _, err := s.Points.Award(tx, &o); err != nil {
			return err
		}
		confirmed = true
		return nil
	})
	if err != nil || !confirmed {
		return false, err
	}

	// Post-commit side effects. The transition is already durable; none of
	// these may undo it.
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return true, nil
	}
	s.Store.Clear(order.CustomerID)
	go func() {
		user, err := s.UserRepo.FindByID(order.CustomerID)
		if err != nil {
			log.Printf("order %s: load customer for notification: %v", order.Ref, err)
			return
		}
		if err := s.Notifier.SendOrderConfirmation(user, order); err != nil {
			log.Printf("order %s: confirmation notification failed: %v", order.Ref, err)
		}
	}()
	return true, nil
}

// ConfirmPaymentByRef resolves the provider's correlation token back to the
// local order and confirms it.
func (s *OrderService) ConfirmPaymentByRef(ref string) (bool, error) {
	o, err := s.Repo.GetOrderByRef(ref)
	if err != nil {
		return false, err
	}
	return s.ConfirmPayment(o.ID)
}

// ----- Listings -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Lines []entity.OrderLine `json:"lines"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Lines: lines}, nil
}

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, status *entity.OrderStatus, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(userID, restID, orderID uint) (*OrderDetail, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Lines: lines}, nil
}
