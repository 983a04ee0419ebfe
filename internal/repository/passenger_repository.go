package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/train-booking-api/internal/model"
)

type PassengerRepo struct{ DB *sql.DB }

func NewPassengerRepo(db *sql.DB) *PassengerRepo { return &PassengerRepo{DB: db} }

// ListVisible returns the passengers a user can pick from: their own plus
// the unowned shared pool (user_id IS NULL).
func (r *PassengerRepo) ListVisible(ctx context.Context, userID uint64) ([]model.Passenger, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,name,age FROM passengers WHERE user_id=? OR user_id IS NULL ORDER BY id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Passenger{}
	for rows.Next() {
		var p model.Passenger
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Age); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Insert adds a passenger owned by userID and returns its ID.
func (r *PassengerRepo) Insert(ctx context.Context, userID uint64, name string, age int) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO passengers (user_id, name, age) VALUES (?,?,?)",
		userID, name, age)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
