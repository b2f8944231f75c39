// Package payments is the boundary to the external payment processor.
// Everything above it deals in order refs and line items; nothing above it
// sees provider types.
package payments

import "errors"

// LineItem is one row of the externally-facing price snapshot, already in
// the smallest currency unit.
type LineItem struct {
	Label      string
	UnitAmount int64 // minor currency units
	Quantity   int64
}

// EventCheckoutCompleted is the only inbound event type acted upon.
const EventCheckoutCompleted = "checkout.session.completed"

// Event is a verified inbound provider event reduced to what the order
// core needs: the event type and the echoed correlation token.
type Event struct {
	Type     string
	OrderRef string
}

var ErrBadSignature = errors.New("payments: event signature verification failed")

// Gateway creates hosted checkout sessions and verifies inbound events.
type Gateway interface {
	// CreateCheckoutSession returns the URL the customer is redirected to.
	// orderRef travels as the correlation token and comes back on events.
	CreateCheckoutSession(orderRef string, items []LineItem, successURL, cancelURL string) (string, error)

	// VerifyEvent authenticates a raw webhook payload against the shared
	// secret. An unverifiable payload returns ErrBadSignature and must
	// produce no state change in the caller.
	VerifyEvent(payload []byte, sigHeader string) (Event, error)
}
