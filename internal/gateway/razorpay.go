// Package gateway wraps the Razorpay payment gateway: order creation through
// the official client and the HMAC check for payment callbacks.
package gateway

import (
	razorpay "github.com/razorpay/razorpay-go"
)

// Currency is fixed; amounts are always charged in INR minor units (paise).
const Currency = "INR"

// OrderCreator is the slice of the gateway the payment handler needs.
type OrderCreator interface {
	CreateOrder(amountMinor int64, receipt string) (map[string]interface{}, error)
}

// Razorpay is constructed once at startup and shared across requests.
type Razorpay struct {
	client *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	return &Razorpay{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a payment intent for amountMinor paise and returns the
// gateway's order object verbatim.
func (r *Razorpay) CreateOrder(amountMinor int64, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": Currency,
		"receipt":  receipt,
	}
	return r.client.Order.Create(data, nil)
}
