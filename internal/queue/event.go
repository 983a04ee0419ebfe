// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPaidEvent is published after a payment commits.  It carries enough
// for downstream consumers (receipts, analytics) to act without querying
// the primary database.
type OrderPaidEvent struct {
	OrderID uint64 `json:"order_id"`
	UserID  uint64 `json:"user_id"`
	PaidAt  string `json:"paid_at"`
}
