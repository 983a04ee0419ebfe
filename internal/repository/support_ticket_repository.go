package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/train-booking-api/internal/model"
)

type SupportTicketRepo struct{ DB *sql.DB }

func NewSupportTicketRepo(db *sql.DB) *SupportTicketRepo { return &SupportTicketRepo{DB: db} }

// ListByUser returns the tickets filed by the given user.
func (r *SupportTicketRepo) ListByUser(ctx context.Context, userID uint64) ([]model.SupportTicket, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,message,resolved FROM support_tickets WHERE user_id=? ORDER BY id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SupportTicket{}
	for rows.Next() {
		var t model.SupportTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Message, &t.Resolved); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Insert files a ticket for userID with resolved=false and returns its ID.
func (r *SupportTicketRepo) Insert(ctx context.Context, userID uint64, message string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO support_tickets (user_id, message, resolved) VALUES (?,?,0)",
		userID, message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
