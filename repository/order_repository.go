package repository

import (
	"strings"
	"time"

	"github.com/gustavogalazzo/YummyGo/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByRef(ref string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("ref = ?", ref).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

// ---------------- Guarded transitions ----------------

// AdvanceGuard flips the status only if it still equals from. The WHERE on
// the prior status makes concurrent advances collapse to at most one
// winner per step.
func (r *OrderRepository) AdvanceGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ConfirmGuard is the payment-confirmation check-and-set: status and the
// delivery PIN land in the same conditional UPDATE, so a duplicate signal
// can neither re-transition nor regenerate the PIN.
func (r *OrderRepository) ConfirmGuard(tx *gorm.DB, orderID uint, pin string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.StatusPendingPayment).
		Updates(map[string]any{
			"status":       entity.StatusReceived,
			"delivery_pin": pin,
		})
	return res.RowsAffected, res.Error
}

// ---------------- Listings ----------------

type OrderSummary struct {
	ID           uint               `json:"id"`
	Ref          string             `json:"ref"`
	RestaurantID uint               `json:"restaurantId"`
	TotalPrice   decimal.Decimal    `json:"totalPrice"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, ref, restaurant_id, total_price, status, created_at").
		Where("customer_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type OwnerOrderSummary struct {
	ID           uint               `json:"id"`
	CustomerID   uint               `json:"customerId"`
	CustomerName string             `json:"customerName"`
	TotalPrice   decimal.Decimal    `json:"totalPrice"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil {
		dbCount = dbCount.Where("status = ?", *status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID         uint
		CustomerID uint
		TotalPrice decimal.Decimal
		Status     entity.OrderStatus
		CreatedAt  time.Time
		FullName   string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.customer_id, o.total_price, o.status, o.created_at, u.full_name").
		Joins("JOIN users u ON u.id = o.customer_id").
		Where("o.restaurant_id = ?", restID)
	if status != nil {
		db = db.Where("o.status = ?", *status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OwnerOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OwnerOrderSummary{
			ID:           row.ID,
			CustomerID:   row.CustomerID,
			CustomerName: strings.TrimSpace(row.FullName),
			TotalPrice:   row.TotalPrice,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

// ---------------- Report aggregates ----------------

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

func (r *OrderRepository) CountByStatus(restID uint, from, to time.Time) ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restID, from, to).
		Group("status").
		Scan(&out).Error
	return out, err
}

// Revenue sums total_price over paid orders in the window.
func (r *OrderRepository) Revenue(restID uint, from, to time.Time) (decimal.Decimal, error) {
	var row struct{ Revenue decimal.Decimal }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0) AS revenue").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restID, from, to).
		Where("status IN ?", []entity.OrderStatus{
			entity.StatusReceived, entity.StatusInPreparation,
			entity.StatusInDelivery, entity.StatusCompleted,
		}).
		Scan(&row).Error
	return row.Revenue, err
}

type TopProduct struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

func (r *OrderRepository) TopProducts(restID uint, from, to time.Time, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []TopProduct
	err := r.DB.Table("order_lines AS l").
		Select("l.product_id, p.name, SUM(l.quantity) AS quantity").
		Joins("JOIN orders o ON o.id = l.order_id").
		Joins("JOIN products p ON p.id = l.product_id").
		Where("o.restaurant_id = ? AND o.created_at BETWEEN ? AND ?", restID, from, to).
		Where("o.status IN ?", []entity.OrderStatus{
			entity.StatusReceived, entity.StatusInPreparation,
			entity.StatusInDelivery, entity.StatusCompleted,
		}).
		Group("l.product_id, p.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
