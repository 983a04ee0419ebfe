package model

// Promotion is a marketing entry shown to everyone, no auth required.
type Promotion struct {
	ID          uint64  // promotions.id
	Title       string  // promotions.title
	Description *string // promotions.description (nullable)
}
