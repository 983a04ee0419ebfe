package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/train-booking-api/internal/model"
)

type PromotionRepo struct{ DB *sql.DB }

func NewPromotionRepo(db *sql.DB) *PromotionRepo { return &PromotionRepo{DB: db} }

// ListAll returns every promotion.
func (r *PromotionRepo) ListAll(ctx context.Context) ([]model.Promotion, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id,title,description FROM promotions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Promotion{}
	for rows.Next() {
		var p model.Promotion
		if err := rows.Scan(&p.ID, &p.Title, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
