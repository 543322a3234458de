package models

import "time"

// Customer is a registered buyer that purchase orders are raised against.
// Phone is the natural external key and is unique across all customers.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
