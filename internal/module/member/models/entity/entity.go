package entity

import (
	"database/sql"
	"time"
)

const (
	MemberStatusActive = "Active"
	MemberTypeRegular  = "Member"
)

type Member struct {
	PmaID         string       `db:"pma_id"`
	FirstName     string       `db:"first_name"`
	LastName      string       `db:"last_name"`
	Phone         string       `db:"phone"`
	Dob           time.Time    `db:"dob"`
	NID           string       `db:"nid"`
	Email         string       `db:"email"`
	Password      string       `db:"password"`
	Type          string       `db:"type"`
	Status        string       `db:"status"`
	TermsAccepted bool         `db:"terms_accepted"`
	LoginCount    int          `db:"login_count"`
	LastLogin     sql.NullTime `db:"last_login"`
	CreatedAt     time.Time    `db:"created_at"`
}
