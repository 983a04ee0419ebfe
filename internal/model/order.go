package model

// Order is a booked ticket owned by a user.  Paid starts false and is
// flipped exactly once by the payment endpoint; it never reverts.
type Order struct {
	ID            uint64 // orders.id
	UserID        uint64 // orders.user_id (owner)
	TrainID       uint64 // orders.train_id
	PassengerName string // orders.passenger_name
	PassengerAge  int    // orders.passenger_age
	Paid          bool   // orders.paid
}
