package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/train-booking-api/internal/model"
)

type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// ErrAlreadyPaid is returned by MarkPaid when the order exists but was paid
// before this call.  Handlers translate it into a no-op success response.
var ErrAlreadyPaid = errors.New("order already paid")

// Create inserts an unpaid order and returns it.
func (r *OrderRepo) Create(ctx context.Context, userID, trainID uint64, passengerName string, passengerAge int) (model.Order, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO orders (user_id, train_id, passenger_name, passenger_age, paid) VALUES (?,?,?,?,0)",
		userID, trainID, passengerName, passengerAge)
	if err != nil {
		return model.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{
		ID:            uint64(id),
		UserID:        userID,
		TrainID:       trainID,
		PassengerName: passengerName,
		PassengerAge:  passengerAge,
	}, nil
}

// ListByUser returns the orders owned by the given user.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,train_id,passenger_name,passenger_age,paid FROM orders WHERE user_id=? ORDER BY id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TrainID, &o.PassengerName, &o.PassengerAge, &o.Paid); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// MarkPaid atomically flips paid on an order owned by userID.  The
// conditional update closes the race between two concurrent payments of the
// same order: only one caller can move paid from 0 to 1.  It returns
// sql.ErrNoRows when no such order exists for this user and ErrAlreadyPaid
// when the flag was set before the call.
func (r *OrderRepo) MarkPaid(ctx context.Context, id, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET paid=1 WHERE id=? AND user_id=? AND paid=0",
		id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	// Nothing updated: either the order is missing or it was already paid.
	var paid bool
	err = r.DB.QueryRowContext(ctx,
		"SELECT paid FROM orders WHERE id=? AND user_id=? LIMIT 1", id, userID).Scan(&paid)
	if err != nil {
		return err // sql.ErrNoRows -> order not found for this user
	}
	return ErrAlreadyPaid
}
