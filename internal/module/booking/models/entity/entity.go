package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SlotAvailability is a catalog slot with whether it is taken on the queried date.
type SlotAvailability struct {
	Serial     int                 `db:"serial"`
	SlotID     string              `db:"slot_id"`
	SlotName   string              `db:"slot_name"`
	SlotTiming string              `db:"slot_timing"`
	Price      decimal.Decimal     `db:"price"`
	Type       string              `db:"type"`
	Offer      sql.NullString      `db:"offer"`
	OfferPrice decimal.NullDecimal `db:"offer_price"`
	Booked     bool                `db:"booked"`
}

type Slot struct {
	SlotID     string              `db:"slot_id"`
	SlotName   string              `db:"slot_name"`
	SlotTiming string              `db:"slot_timing"`
	Price      decimal.Decimal     `db:"price"`
	OfferPrice decimal.NullDecimal `db:"offer_price"`
	Type       string              `db:"type"`
}

func (s Slot) EffectivePrice() decimal.Decimal {
	if s.OfferPrice.Valid && s.OfferPrice.Decimal.IsPositive() {
		return s.OfferPrice.Decimal
	}
	return s.Price
}

// BookingHistory is a member booking joined with its settling transaction, if any.
type BookingHistory struct {
	BookingID     string              `db:"booking_id"`
	BookingDate   time.Time           `db:"booking_date"`
	CreatedAt     time.Time           `db:"created_at"`
	SlotIDs       pq.StringArray      `db:"slot_id"`
	Status        string              `db:"status"`
	TransactionID sql.NullString      `db:"transaction_id"`
	Amount        decimal.NullDecimal `db:"amount"`
	PaymentMethod sql.NullString      `db:"payment_method"`
	PaymentStatus sql.NullString      `db:"payment_status"`
	BankTranID    sql.NullString      `db:"bank_tran_id"`
}

type Invoice struct {
	BookingID       string          `db:"booking_id"`
	InvoiceID       string          `db:"invoice_id"`
	BookingDate     time.Time       `db:"booking_date"`
	SlotIDs         pq.StringArray  `db:"slot_id"`
	TransactionID   string          `db:"transaction_id"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Currency        string          `db:"currency"`
	PaymentMethod   string          `db:"payment_method"`
	CardNo          string          `db:"card_no"`
	BankTranID      string          `db:"bank_tran_id"`
	PaidAt          time.Time       `db:"paid_at"`
	PmaID           string          `db:"pma_id"`
	MemberFirstName string          `db:"member_first_name"`
	MemberLastName  string          `db:"member_last_name"`
	MemberPhone     string          `db:"member_phone"`
	MemberEmail     string          `db:"member_email"`
}
