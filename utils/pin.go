package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DeliveryPin returns a 4-digit code (1000-9999) the customer shows the
// courier on handover.
func DeliveryPin() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	return fmt.Sprintf("%d", n.Int64()+1000)
}
