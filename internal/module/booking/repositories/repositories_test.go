package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"turf-booking-service/internal/module/booking/repositories"
	"turf-booking-service/internal/pkg/errors"
	log_internal "turf-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
	ctx  = context.Background()
	day  = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) {
	var err error
	dbx, mock, err = sqlxmock.Newx()
	require.NoError(t, err)
	repo = repositories.New(dbx, log_internal.Nop())
}

func teardown() {
	dbx.Close()
}

func TestFindSlotsByDate(t *testing.T) {
	setup(t)
	defer teardown()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"serial", "slot_id", "slot_name", "slot_timing", "price", "type", "offer", "offer_price", "booked"}).
			AddRow(1, "SLOT01PMA", "Morning 1", "6:00 AM - 7:30 AM", "1000.00", "regular", "Early bird", "952.38", true).
			AddRow(2, "SLOT02PMA", "Morning 2", "7:30 AM - 9:00 AM", "1200.00", "regular", nil, nil, false)
		mock.ExpectQuery("FROM pma_booking_slots bs ORDER BY bs.serial").WithArgs(day).WillReturnRows(rows)

		slots, err := repo.FindSlotsByDate(ctx, day)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Booked)
		assert.Equal(t, "Early bird", slots[0].Offer.String)
		assert.True(t, decimal.RequireFromString("952.38").Equal(slots[0].OfferPrice.Decimal))
		assert.False(t, slots[1].Booked)
		assert.False(t, slots[1].OfferPrice.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("FROM pma_booking_slots bs").WillReturnError(sql.ErrConnDone)

		_, err := repo.FindSlotsByDate(ctx, day)
		assert.Equal(t, 500, errors.StatusCode(err))
	})
}

func TestFindBookingHistory(t *testing.T) {
	setup(t)
	defer teardown()

	rows := sqlxmock.NewRows([]string{"booking_id", "booking_date", "created_at", "slot_id", "status",
		"transaction_id", "amount", "payment_method", "payment_status", "bank_tran_id"}).
		AddRow("BOOKED10PMA", day, day, "{SLOT01PMA,SLOT02PMA}", "BOOKED", "TXNPMA123456ABCD", "2260.00", "VISA", "SUCCESS", "2310201234567").
		AddRow("BOOKED04PMA", day, day, "{SLOT03PMA}", "PENDING", nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM pma_booking_info bi").WithArgs("M01PMA").WillReturnRows(rows)

	history, err := repo.FindBookingHistory(ctx, "M01PMA")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, []string{"SLOT01PMA", "SLOT02PMA"}, []string(history[0].SlotIDs))
	assert.True(t, history[0].Amount.Valid)
	assert.False(t, history[1].TransactionID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignInvoiceID(t *testing.T) {
	setup(t)
	defer teardown()

	t.Run("assigned", func(t *testing.T) {
		mock.ExpectExec("UPDATE pma_booking_info SET invoice_id").
			WithArgs("INV10PMA", "BOOKED10PMA", "M01PMA").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		ok, err := repo.AssignInvoiceID(ctx, "M01PMA", "BOOKED10PMA", "INV10PMA")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("booking of another member", func(t *testing.T) {
		mock.ExpectExec("UPDATE pma_booking_info SET invoice_id").
			WithArgs("INV10PMA", "BOOKED10PMA", "M02PMA").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		ok, err := repo.AssignInvoiceID(ctx, "M02PMA", "BOOKED10PMA", "INV10PMA")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindInvoice(t *testing.T) {
	setup(t)
	defer teardown()

	t.Run("found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"booking_id", "invoice_id", "booking_date", "slot_id", "transaction_id",
			"total_amount", "currency", "payment_method", "card_no", "bank_tran_id", "paid_at",
			"pma_id", "member_first_name", "member_last_name", "member_phone", "member_email"}).
			AddRow("BOOKED10PMA", "INV10PMA", day, "{SLOT01PMA}", "TXNPMA123456ABCD", "1000.00", "BDT", "VISA",
				"418117XXXXXX6675", "2310201234567", day, "M01PMA", "Rahim", "Uddin", "01700000000", "rahim@example.com")
		mock.ExpectQuery("FROM pma_booking_info b").WithArgs("BOOKED10PMA", "M01PMA").WillReturnRows(rows)

		invoice, err := repo.FindInvoice(ctx, "M01PMA", "BOOKED10PMA")
		require.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, "INV10PMA", invoice.InvoiceID)
		assert.True(t, decimal.RequireFromString("1000").Equal(invoice.TotalAmount))
	})

	t.Run("not settled", func(t *testing.T) {
		mock.ExpectQuery("FROM pma_booking_info b").WithArgs("BOOKED11PMA", "M01PMA").WillReturnError(sql.ErrNoRows)

		invoice, err := repo.FindInvoice(ctx, "M01PMA", "BOOKED11PMA")
		assert.NoError(t, err)
		assert.Nil(t, invoice)
	})

	t.Run("booking of another member", func(t *testing.T) {
		mock.ExpectQuery("AND b.pma_id = ").WithArgs("BOOKED10PMA", "M02PMA").WillReturnError(sql.ErrNoRows)

		invoice, err := repo.FindInvoice(ctx, "M02PMA", "BOOKED10PMA")
		assert.NoError(t, err)
		assert.Nil(t, invoice)
	})
}
