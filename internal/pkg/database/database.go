package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"turf-booking-service/config"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// DuplicateKeyError is returned when an insert hits a unique constraint.
type DuplicateKeyError struct {
	Constraint string
	err        error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %s", e.Constraint)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.err
}

// GetConnection opens the process-wide pool. The caller owns it and closes it on shutdown.
func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s application_name=turf-booking-service",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode, cfg.TimeZone)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("error connect database: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db
}

// WithTransaction runs fn inside a single transaction. Any error or panic from fn rolls back;
// the connection goes back to the pool on every path.
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit transaction: %w", Classify(cErr))
		}
	}()

	return Classify(fn(tx))
}

// Classify turns unique violations into *DuplicateKeyError and leaves everything else untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return &DuplicateKeyError{Constraint: pqErr.Constraint, err: err}
	}
	return err
}

func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}

// DuplicateConstraint returns the violated constraint name, or "" when err is not a duplicate.
func DuplicateConstraint(err error) string {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Constraint
	}
	return ""
}
