package entity

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	BookingStatusBooked    = "BOOKED"
	BookingStatusPending   = "PENDING"
	BookingStatusCancelled = "CANCELLED"

	TransactionStatusSuccess   = "SUCCESS"
	TransactionStatusFailed    = "FAILED"
	TransactionStatusCancelled = "CANCELLED"
)

type Booking struct {
	BookingID     string         `db:"booking_id"`
	PmaID         string         `db:"pma_id"`
	BookingDate   time.Time      `db:"booking_date"`
	SlotIDs       pq.StringArray `db:"slot_id"`
	Status        string         `db:"status"`
	TransactionID sql.NullString `db:"transaction_id"`
	InvoiceID     sql.NullString `db:"invoice_id"`
	CreatedAt     time.Time      `db:"created_at"`
}

type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	PmaID              sql.NullString  `db:"pma_id"`
	BookingID          sql.NullString  `db:"booking_id"`
	Amount             decimal.Decimal `db:"amount"`
	Currency           string          `db:"currency"`
	PaymentMethod      string          `db:"payment_method"`
	CardNo             string          `db:"card_no"`
	BankTranID         string          `db:"bank_tran_id"`
	Status             string          `db:"status"`
	RawPayload         types.JSONText  `db:"sslcommerz_data"`
	CancellationReason sql.NullString  `db:"cancellation_reason"`
	CreatedAt          time.Time       `db:"created_at"`
}

type Slot struct {
	SlotID     string              `db:"slot_id"`
	SlotName   string              `db:"slot_name"`
	SlotTiming string              `db:"slot_timing"`
	Price      decimal.Decimal     `db:"price"`
	OfferPrice decimal.NullDecimal `db:"offer_price"`
	Type       string              `db:"type"`
}

// EffectivePrice is the offer price when one is set, the list price otherwise.
func (s Slot) EffectivePrice() decimal.Decimal {
	if s.OfferPrice.Valid && s.OfferPrice.Decimal.IsPositive() {
		return s.OfferPrice.Decimal
	}
	return s.Price
}

type Member struct {
	PmaID     string `db:"pma_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	NID       string `db:"nid"`
	Status    string `db:"status"`
}

func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
