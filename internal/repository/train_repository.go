package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/train-booking-api/internal/model"
)

type TrainRepo struct{ DB *sql.DB }

func NewTrainRepo(db *sql.DB) *TrainRepo { return &TrainRepo{DB: db} }

const trainColumns = "id,from_city,to_city,departure_time,price"

// TrainSearchQuery defines the optional filters of the timetable search.
// Empty fields are not applied; both present means AND semantics.
type TrainSearchQuery struct {
	From string
	To   string
}

// Search returns all trains matching the query.  Filters are
// case-insensitive substring matches on the origin and destination city.
// There is no pagination; the timetable is small.
func (r *TrainRepo) Search(ctx context.Context, q TrainSearchQuery) ([]model.Train, error) {
	where := []string{}
	args := []any{}

	if q.From != "" {
		where = append(where, "LOWER(from_city) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.From)+"%")
	}
	if q.To != "" {
		where = append(where, "LOWER(to_city) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.To)+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+trainColumns+" FROM trains WHERE "+cond+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Train{}
	for rows.Next() {
		var t model.Train
		if err := rows.Scan(&t.ID, &t.FromCity, &t.ToCity, &t.Time, &t.Price); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListAll returns the whole timetable (admin listing).
func (r *TrainRepo) ListAll(ctx context.Context) ([]model.Train, error) {
	return r.Search(ctx, TrainSearchQuery{})
}

// GetByID fetches one train; sql.ErrNoRows when absent.
func (r *TrainRepo) GetByID(ctx context.Context, id uint64) (model.Train, error) {
	var t model.Train
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+trainColumns+" FROM trains WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.FromCity, &t.ToCity, &t.Time, &t.Price)
	return t, err
}

// Insert adds a timetable entry and returns its ID.
func (r *TrainRepo) Insert(ctx context.Context, fromCity, toCity, departure string, price float64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO trains (from_city, to_city, departure_time, price) VALUES (?,?,?,?)",
		fromCity, toCity, departure, price)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update overwrites the provided non-nil fields of a train.  It reports
// sql.ErrNoRows when the train does not exist.
func (r *TrainRepo) Update(ctx context.Context, id uint64, price *float64, departure, fromCity, toCity *string) error {
	// RowsAffected would be 0 for a no-change update too, so existence is
	// checked up front.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE trains SET
			price          = COALESCE(?, price),
			departure_time = COALESCE(?, departure_time),
			from_city      = COALESCE(?, from_city),
			to_city        = COALESCE(?, to_city)
		WHERE id=?`,
		price, departure, fromCity, toCity, id)
	return err
}

// Delete removes a timetable entry; sql.ErrNoRows when absent.  Orders
// referencing the train keep their train_id, which then points nowhere.
func (r *TrainRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM trains WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
