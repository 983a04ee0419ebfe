package model

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column.  Handlers define separate
// response types with JSON tags; the password hash never leaves the
// repository/handler layer in a response body.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Name         – display name (nullable).
//  Phone        – contact phone (nullable).
//  City         – home city (nullable).
//  IsAdmin      – whether the user may call the admin endpoints.
type User struct {
	ID           uint64  // users.id
	Email        string  // users.email
	PasswordHash string  // users.password_hash
	Name         *string // users.name (nullable)
	Phone        *string // users.phone (nullable)
	City         *string // users.city (nullable)
	IsAdmin      bool    // users.is_admin
}
