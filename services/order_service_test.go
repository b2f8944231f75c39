package services

import (
	"errors"
	"testing"

	"github.com/gustavogalazzo/YummyGo/entity"
)

func TestCheckoutCreatesPendingOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	gw := &fakeGateway{}
	svc := f.orderService(gw)

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if out.RedirectURL != "https://pay.example.com/session/"+out.Ref {
		t.Errorf("redirect = %s", out.RedirectURL)
	}
	if gw.lastRef != out.Ref {
		t.Errorf("gateway ref = %s, want %s", gw.lastRef, out.Ref)
	}
	// two product lines plus the delivery fee
	if len(gw.lastItems) != 3 {
		t.Errorf("gateway items = %d, want 3", len(gw.lastItems))
	}

	var o entity.Order
	if err := f.db.First(&o, out.OrderID).Error; err != nil {
		t.Fatal(err)
	}
	if o.Status != entity.StatusPendingPayment {
		t.Errorf("status = %s, want PendingPayment", o.Status)
	}
	if !o.TotalPrice.Equal(dec("55.00")) {
		t.Errorf("total = %s, want 55.00", o.TotalPrice)
	}
	if o.DeliveryPin != nil {
		t.Error("pin must not exist before the payment is confirmed")
	}
	if o.DeliveryAddress == "" {
		t.Error("delivery address snapshot missing")
	}

	var lines []entity.OrderLine
	if err := f.db.Where("order_id = ?", o.ID).Find(&lines).Error; err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	byProduct := map[uint]entity.OrderLine{}
	for _, l := range lines {
		byProduct[l.ProductID] = l
	}
	if l := byProduct[f.productX.ID]; l.Quantity != 2 || !l.UnitPriceAtPurchase.Equal(dec("20.00")) {
		t.Errorf("line X = %+v", l)
	}
	if l := byProduct[f.productY.ID]; l.Quantity != 1 || !l.UnitPriceAtPurchase.Equal(dec("10.00")) {
		t.Errorf("line Y = %+v", l)
	}

	// the cart stays until payment is confirmed
	if f.store.Get(f.customer.ID).Empty() {
		t.Error("checkout must not clear the cart")
	}
}

func TestCheckoutFreezesPriceAgainstLaterEdits(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// owner raises the price after the order was placed
	if err := f.db.Model(&f.productX).Update("price", dec("99.00")).Error; err != nil {
		t.Fatal(err)
	}

	var line entity.OrderLine
	if err := f.db.Where("order_id = ? AND product_id = ?", out.OrderID, f.productX.ID).
		First(&line).Error; err != nil {
		t.Fatal(err)
	}
	if !line.UnitPriceAtPurchase.Equal(dec("20.00")) {
		t.Errorf("frozen price = %s, want 20.00", line.UnitPriceAtPurchase)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService(&fakeGateway{})

	if _, err := svc.Checkout(f.customer.ID, f.address.ID); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutForeignAddress(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	other := entity.Address{Street: "Av. Paulista", Number: "1", City: "Sao Paulo", State: "SP", ZipCode: "01310-000", UserID: f.owner.ID}
	if err := f.db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Checkout(f.customer.ID, other.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCheckoutGatewayFailureLeavesNoOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	gw := &fakeGateway{failWith: errors.New("stripe is down")}
	svc := f.orderService(gw)

	if _, err := svc.Checkout(f.customer.ID, f.address.ID); err == nil {
		t.Fatal("expected checkout to fail")
	}

	var orders, lines int64
	f.db.Model(&entity.Order{}).Count(&orders)
	f.db.Model(&entity.OrderLine{}).Count(&lines)
	if orders != 0 || lines != 0 {
		t.Errorf("orphans left behind: %d orders, %d lines", orders, lines)
	}
	if f.store.Get(f.customer.ID).Empty() {
		t.Error("a failed checkout must not lose the cart")
	}
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	confirmed, err := svc.ConfirmPayment(out.OrderID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !confirmed {
		t.Fatal("first confirmation must win")
	}

	var o entity.Order
	if err := f.db.First(&o, out.OrderID).Error; err != nil {
		t.Fatal(err)
	}
	if o.Status != entity.StatusReceived {
		t.Errorf("status = %s, want Received", o.Status)
	}
	if o.DeliveryPin == nil || len(*o.DeliveryPin) != 4 {
		t.Fatalf("pin = %v, want a 4 digit code", o.DeliveryPin)
	}
	firstPin := *o.DeliveryPin

	var u entity.User
	if err := f.db.First(&u, f.customer.ID).Error; err != nil {
		t.Fatal(err)
	}
	if u.Points != 550 {
		t.Errorf("points = %d, want 550", u.Points)
	}
	if !f.store.Get(f.customer.ID).Empty() {
		t.Error("confirmation must clear the cart")
	}

	// webhook and success callback race: the second call is a no-op
	confirmed, err = svc.ConfirmPayment(out.OrderID)
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if confirmed {
		t.Error("duplicate confirmation must report confirmed=false")
	}

	if err := f.db.First(&o, out.OrderID).Error; err != nil {
		t.Fatal(err)
	}
	if *o.DeliveryPin != firstPin {
		t.Error("duplicate confirmation must not rotate the pin")
	}
	if err := f.db.First(&u, f.customer.ID).Error; err != nil {
		t.Fatal(err)
	}
	if u.Points != 550 {
		t.Errorf("points after duplicate = %d, want 550", u.Points)
	}
}

func TestConfirmPaymentByRef(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	confirmed, err := svc.ConfirmPaymentByRef(out.Ref)
	if err != nil {
		t.Fatalf("confirm by ref: %v", err)
	}
	if !confirmed {
		t.Error("expected confirmation through the correlation token")
	}

	if _, err := svc.ConfirmPaymentByRef("no-such-ref"); err == nil {
		t.Error("unknown ref must error")
	}
}

func TestAdvanceWalksTheFulfillmentFlow(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.ConfirmPayment(out.OrderID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	want := []entity.OrderStatus{
		entity.StatusInPreparation,
		entity.StatusInDelivery,
		entity.StatusCompleted,
	}
	for _, w := range want {
		got, err := svc.Advance(f.owner.ID, out.OrderID)
		if err != nil {
			t.Fatalf("advance to %s: %v", w, err)
		}
		if got != w {
			t.Fatalf("advanced to %s, want %s", got, w)
		}
	}

	if _, err := svc.Advance(f.owner.ID, out.OrderID); !errors.Is(err, ErrOrderFinal) {
		t.Fatalf("err = %v, want ErrOrderFinal", err)
	}
}

func TestAdvanceRequiresOwnership(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.ConfirmPayment(out.OrderID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if _, err := svc.Advance(f.customer.ID, out.OrderID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestAdvanceRejectsUnpaidOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := svc.Advance(f.owner.ID, out.OrderID); !errors.Is(err, ErrNotAdvanceable) {
		t.Fatalf("err = %v, want ErrNotAdvanceable", err)
	}
}

func TestCancelOnlyBeforePayment(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if err := svc.Cancel(f.owner.ID, out.OrderID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	var o entity.Order
	if err := f.db.First(&o, out.OrderID).Error; err != nil {
		t.Fatal(err)
	}
	if o.Status != entity.StatusCancelled {
		t.Errorf("status = %s, want Cancelled", o.Status)
	}

	// a cancelled order cannot be confirmed anymore
	confirmed, err := svc.ConfirmPayment(out.OrderID)
	if err != nil {
		t.Fatalf("confirm after cancel: %v", err)
	}
	if confirmed {
		t.Error("cancelled order must not confirm")
	}
}

func TestCancelAfterPaymentIsRejected(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	svc := f.orderService(&fakeGateway{})

	out, err := svc.Checkout(f.customer.ID, f.address.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.ConfirmPayment(out.OrderID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if err := svc.Cancel(f.owner.ID, out.OrderID); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}
