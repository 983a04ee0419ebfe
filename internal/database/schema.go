package database

import (
	"context"
	"database/sql"
	"time"
)

// schema holds the table definitions for the booking backend.  Statements are
// idempotent so EnsureSchema can run on every start without clobbering data.
// There is no migration tooling here; altering a table is a manual operation.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		name          VARCHAR(255)    NULL,
		phone         VARCHAR(64)     NULL,
		city          VARCHAR(255)    NULL,
		is_admin      TINYINT(1)      NOT NULL DEFAULT 0,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS trains (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		from_city      VARCHAR(255)    NOT NULL,
		to_city        VARCHAR(255)    NOT NULL,
		departure_time VARCHAR(64)     NOT NULL,
		price          DECIMAL(10,2)   NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id        BIGINT UNSIGNED NOT NULL,
		train_id       BIGINT UNSIGNED NOT NULL,
		passenger_name VARCHAR(255)    NOT NULL,
		passenger_age  INT             NOT NULL,
		paid           TINYINT(1)      NOT NULL DEFAULT 0,
		KEY idx_orders_user (user_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NULL,
		name    VARCHAR(255)    NOT NULL,
		age     INT             NOT NULL,
		KEY idx_passengers_user (user_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS promotions (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title       VARCHAR(255)    NOT NULL,
		description TEXT            NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id  BIGINT UNSIGNED NULL,
		message  TEXT            NOT NULL,
		resolved TINYINT(1)      NOT NULL DEFAULT 0,
		KEY idx_tickets_user (user_id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the application tables if they do not exist yet.  It
// runs once at process start, before any request is served.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
