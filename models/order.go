package models

import "time"

// Address is the free-form shipping/contact record collected at checkout.
// It is validated at submission time and persisted only inside an Order.
type Address struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Street   string `json:"street" bson:"street"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Pincode  string `json:"pincode" bson:"pincode"`
	Landmark string `json:"landmark,omitempty" bson:"landmark,omitempty"`
}

// Payment methods offered at checkout.
const (
	PaymentCard       = "card"
	PaymentUPI        = "upi"
	PaymentNetBanking = "netbanking"
	PaymentCOD        = "cod"
)

// OrderStatusConfirmed is the status every order starts in.
const OrderStatusConfirmed = "Confirmed"

// Order is an immutable snapshot of a completed purchase. Items keep the
// cart's ordering from placement time; Total is an integer rupee amount.
type Order struct {
	ID            string     `json:"id" bson:"orderId"`
	Items         []CartItem `json:"items" bson:"items"`
	Total         int        `json:"total" bson:"total"`
	Address       Address    `json:"address" bson:"address"`
	PaymentMethod string     `json:"paymentMethod" bson:"paymentMethod"`
	Date          time.Time  `json:"date" bson:"date"`
	Status        string     `json:"status" bson:"status"`
}
