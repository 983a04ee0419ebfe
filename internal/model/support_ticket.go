package model

// SupportTicket is a message filed by a user.  Resolved defaults to false;
// no endpoint flips it yet, support staff do that directly in the database.
type SupportTicket struct {
	ID       uint64  // support_tickets.id
	UserID   *uint64 // support_tickets.user_id (nullable)
	Message  string  // support_tickets.message
	Resolved bool    // support_tickets.resolved
}
