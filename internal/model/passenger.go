package model

// Passenger is a saved traveller profile.  UserID is nil for entries in the
// shared pool, which every authenticated user can see alongside their own.
type Passenger struct {
	ID     uint64  // passengers.id
	UserID *uint64 // passengers.user_id (nullable)
	Name   string  // passengers.name
	Age    int     // passengers.age
}
