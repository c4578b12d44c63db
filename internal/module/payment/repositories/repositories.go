package repositories

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"time"

	"turf-booking-service/internal/module/payment/models/entity"
	"turf-booking-service/internal/pkg/database"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const transactionPkey = "pma_transactions_history_pkey"

var (
	// ErrBookingIDTaken means the booking id already belongs to a settled booking.
	ErrBookingIDTaken = stdErrors.New("booking id already settled")
	// ErrDuplicateTransaction means another callback settled this transaction first.
	ErrDuplicateTransaction = stdErrors.New("transaction already recorded")
	// ErrSlotTaken means one of the slots is already claimed for that date.
	ErrSlotTaken = stdErrors.New("slot already claimed for date")
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindTransaction(ctx context.Context, transactionID string) (*entity.Transaction, error)
	FindMemberByID(ctx context.Context, pmaID string) (*entity.Member, error)
	FindSlotsByIDs(ctx context.Context, slotIDs []string) ([]entity.Slot, error)
	FindClaimedSlots(ctx context.Context, bookingDate time.Time, slotIDs []string) ([]string, error)
	FindBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	LastBookingID(ctx context.Context) (string, error)
	RecordTransaction(ctx context.Context, txn entity.Transaction) (bool, error)
	SettleBooking(ctx context.Context, booking entity.Booking, txn entity.Transaction) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindTransaction returns nil when the transaction has never been recorded.
func (r *repositories) FindTransaction(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	query := `SELECT transaction_id, pma_id, booking_id, amount, currency, payment_method, card_no, bank_tran_id,
		status, sslcommerz_data, cancellation_reason, created_at
		FROM pma_transactions_history WHERE transaction_id = $1`

	var txn entity.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find transaction", err, transactionID)
		return nil, errors.InternalServerError("error find transaction")
	}
	return &txn, nil
}

func (r *repositories) FindMemberByID(ctx context.Context, pmaID string) (*entity.Member, error) {
	query := `SELECT pma_id, first_name, last_name, email, phone, nid, status FROM pma_member_info WHERE pma_id = $1`

	var member entity.Member
	err := r.db.GetContext(ctx, &member, query, pmaID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find member", err, pmaID)
		return nil, errors.InternalServerError("error find member")
	}
	return &member, nil
}

func (r *repositories) FindSlotsByIDs(ctx context.Context, slotIDs []string) ([]entity.Slot, error) {
	query := `SELECT slot_id, slot_name, slot_timing, price, offer_price, type
		FROM pma_booking_slots WHERE slot_id = ANY($1) ORDER BY slot_id`

	slots := []entity.Slot{}
	if err := r.db.SelectContext(ctx, &slots, query, pq.Array(slotIDs)); err != nil {
		r.log.Error(ctx, "error find slots", err)
		return nil, errors.InternalServerError("error find slots")
	}
	return slots, nil
}

func (r *repositories) FindClaimedSlots(ctx context.Context, bookingDate time.Time, slotIDs []string) ([]string, error) {
	query := `SELECT slot_id FROM pma_booking_slot_claims WHERE booking_date = $1 AND slot_id = ANY($2)`

	claimed := []string{}
	if err := r.db.SelectContext(ctx, &claimed, query, bookingDate, pq.Array(slotIDs)); err != nil {
		r.log.Error(ctx, "error find claimed slots", err)
		return nil, errors.InternalServerError("error find claimed slots")
	}
	return claimed, nil
}

func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT booking_id, pma_id, booking_date, slot_id, status, transaction_id, invoice_id, created_at
		FROM pma_booking_info WHERE booking_id = $1`

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find booking", err, bookingID)
		return nil, errors.InternalServerError("error find booking")
	}
	return &booking, nil
}

// LastBookingID orders by the numeric part so BOOKED100PMA sorts after BOOKED99PMA.
func (r *repositories) LastBookingID(ctx context.Context) (string, error) {
	query := `SELECT booking_id FROM pma_booking_info
		WHERE booking_id ~ '^BOOKED[0-9]+PMA$'
		ORDER BY CAST(substring(booking_id FROM '^BOOKED([0-9]+)PMA$') AS INTEGER) DESC
		LIMIT 1`

	var bookingID string
	err := r.db.GetContext(ctx, &bookingID, query)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.log.Error(ctx, "error find last booking id", err)
		return "", errors.InternalServerError("error find last booking id")
	}
	return bookingID, nil
}

// RecordTransaction inserts a booking-less audit row. It reports false when the id was
// already recorded.
func (r *repositories) RecordTransaction(ctx context.Context, txn entity.Transaction) (bool, error) {
	normalizePayload(&txn)
	query := `INSERT INTO pma_transactions_history (transaction_id, pma_id, booking_id, amount, currency, payment_method,
		card_no, bank_tran_id, status, sslcommerz_data, cancellation_reason, created_at)
		VALUES (:transaction_id, :pma_id, :booking_id, :amount, :currency, :payment_method,
		:card_no, :bank_tran_id, :status, :sslcommerz_data, :cancellation_reason, NOW())
		ON CONFLICT (transaction_id) DO NOTHING`

	res, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		r.log.Error(ctx, "error record transaction", err, txn.TransactionID)
		return false, errors.InternalServerError("error record transaction")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error record transaction")
	}
	return affected > 0, nil
}

// SettleBooking writes transaction, booking, slot claims and the booking link in one
// database transaction. The transaction row goes first so its primary key admits a single
// writer per transaction id; a concurrent loser waits on it and gets ErrDuplicateTransaction.
func (r *repositories) SettleBooking(ctx context.Context, booking entity.Booking, txn entity.Transaction) error {
	normalizePayload(&txn)

	err := database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, `INSERT INTO pma_transactions_history (transaction_id, pma_id, booking_id, amount,
			currency, payment_method, card_no, bank_tran_id, status, sslcommerz_data, cancellation_reason, created_at)
			VALUES (:transaction_id, :pma_id, :booking_id, :amount, :currency, :payment_method, :card_no, :bank_tran_id,
			:status, :sslcommerz_data, :cancellation_reason, NOW())
			ON CONFLICT (transaction_id) DO NOTHING`, txn)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return ErrDuplicateTransaction
		}

		// a row left without a transaction link may be taken over; a settled one may not
		res, err = tx.ExecContext(ctx, `INSERT INTO pma_booking_info (booking_id, pma_id, booking_date, slot_id, status, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (booking_id) DO UPDATE SET
				pma_id = EXCLUDED.pma_id,
				booking_date = EXCLUDED.booking_date,
				slot_id = EXCLUDED.slot_id,
				status = EXCLUDED.status
			WHERE pma_booking_info.transaction_id IS NULL`,
			booking.BookingID, booking.PmaID, booking.BookingDate, booking.SlotIDs, booking.Status)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return ErrBookingIDTaken
		}

		for _, slotID := range booking.SlotIDs {
			res, err := tx.ExecContext(ctx, `INSERT INTO pma_booking_slot_claims (booking_id, slot_id, booking_date)
				VALUES ($1, $2, $3)
				ON CONFLICT (slot_id, booking_date) DO UPDATE SET booking_id = EXCLUDED.booking_id
				WHERE pma_booking_slot_claims.booking_id = EXCLUDED.booking_id`,
				booking.BookingID, slotID, booking.BookingDate)
			if err != nil {
				return err
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return ErrSlotTaken
			}
		}

		_, err = tx.ExecContext(ctx, `UPDATE pma_booking_info SET transaction_id = $1 WHERE booking_id = $2`,
			txn.TransactionID, booking.BookingID)
		return err
	})

	switch {
	case err == nil:
		return nil
	case stdErrors.Is(err, ErrBookingIDTaken), stdErrors.Is(err, ErrSlotTaken), stdErrors.Is(err, ErrDuplicateTransaction):
		return err
	case database.DuplicateConstraint(err) == transactionPkey:
		return ErrDuplicateTransaction
	default:
		r.log.Error(ctx, "error settle booking", err, booking.BookingID, txn.TransactionID)
		return err
	}
}

func normalizePayload(txn *entity.Transaction) {
	if len(txn.RawPayload) == 0 {
		txn.RawPayload = []byte("{}")
	}
}
