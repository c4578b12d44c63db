package repositories

import (
	"context"
	"database/sql"
	"time"

	"turf-booking-service/internal/module/booking/models/entity"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindSlotsByDate(ctx context.Context, date time.Time) ([]entity.SlotAvailability, error)
	FindSlotsByIDs(ctx context.Context, slotIDs []string) ([]entity.Slot, error)
	FindBookingHistory(ctx context.Context, pmaID string) ([]entity.BookingHistory, error)
	AssignInvoiceID(ctx context.Context, pmaID, bookingID, invoiceID string) (bool, error)
	FindInvoice(ctx context.Context, pmaID, bookingID string) (*entity.Invoice, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func (r *repositories) FindSlotsByDate(ctx context.Context, date time.Time) ([]entity.SlotAvailability, error) {
	query := `SELECT bs.serial, bs.slot_id, bs.slot_name, bs.slot_timing, bs.price, bs.type, bs.offer, bs.offer_price,
		EXISTS (SELECT 1 FROM pma_booking_slot_claims c WHERE c.slot_id = bs.slot_id AND c.booking_date = $1) AS booked
		FROM pma_booking_slots bs ORDER BY bs.serial`

	slots := []entity.SlotAvailability{}
	if err := r.db.SelectContext(ctx, &slots, query, date); err != nil {
		r.log.Error(ctx, "error find slots by date", err, date.Format("2006-01-02"))
		return nil, errors.InternalServerError("error find slots")
	}
	return slots, nil
}

func (r *repositories) FindSlotsByIDs(ctx context.Context, slotIDs []string) ([]entity.Slot, error) {
	query := `SELECT slot_id, slot_name, slot_timing, price, offer_price, type
		FROM pma_booking_slots WHERE slot_id = ANY($1) ORDER BY serial`

	slots := []entity.Slot{}
	if err := r.db.SelectContext(ctx, &slots, query, pq.Array(slotIDs)); err != nil {
		r.log.Error(ctx, "error find slots", err)
		return nil, errors.InternalServerError("error find slots")
	}
	return slots, nil
}

func (r *repositories) FindBookingHistory(ctx context.Context, pmaID string) ([]entity.BookingHistory, error) {
	query := `SELECT bi.booking_id, bi.booking_date, bi.created_at, bi.slot_id, bi.status,
		th.transaction_id, th.amount, th.payment_method, th.status AS payment_status, th.bank_tran_id
		FROM pma_booking_info bi
		LEFT JOIN pma_transactions_history th ON bi.transaction_id = th.transaction_id
		WHERE bi.pma_id = $1
		ORDER BY bi.created_at DESC`

	history := []entity.BookingHistory{}
	if err := r.db.SelectContext(ctx, &history, query, pmaID); err != nil {
		r.log.Error(ctx, "error find booking history", err, pmaID)
		return nil, errors.InternalServerError("error find booking history")
	}
	return history, nil
}

// AssignInvoiceID stamps the invoice id on a settled booking of the member. It reports false
// when no such booking exists.
func (r *repositories) AssignInvoiceID(ctx context.Context, pmaID, bookingID, invoiceID string) (bool, error) {
	query := `UPDATE pma_booking_info SET invoice_id = $1
		WHERE booking_id = $2 AND pma_id = $3 AND transaction_id IS NOT NULL`

	res, err := r.db.ExecContext(ctx, query, invoiceID, bookingID, pmaID)
	if err != nil {
		r.log.Error(ctx, "error assign invoice id", err, bookingID)
		return false, errors.InternalServerError("error assign invoice id")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error assign invoice id")
	}
	return n > 0, nil
}

// FindInvoice returns nil for bookings that have no settled transaction or belong to
// another member.
func (r *repositories) FindInvoice(ctx context.Context, pmaID, bookingID string) (*entity.Invoice, error) {
	query := `SELECT b.booking_id, COALESCE(b.invoice_id, '') AS invoice_id, b.booking_date, b.slot_id,
		t.transaction_id, t.amount AS total_amount, t.currency, t.payment_method, t.card_no, t.bank_tran_id,
		t.created_at AS paid_at,
		m.pma_id, m.first_name AS member_first_name, m.last_name AS member_last_name,
		m.phone AS member_phone, m.email AS member_email
		FROM pma_booking_info b
		JOIN pma_transactions_history t ON b.transaction_id = t.transaction_id
		JOIN pma_member_info m ON b.pma_id = m.pma_id
		WHERE b.booking_id = $1 AND b.pma_id = $2`

	var invoice entity.Invoice
	err := r.db.GetContext(ctx, &invoice, query, bookingID, pmaID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find invoice", err, bookingID)
		return nil, errors.InternalServerError("error find invoice")
	}
	return &invoice, nil
}
