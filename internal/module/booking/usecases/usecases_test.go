package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"turf-booking-service/internal/module/booking/mocks"
	"turf-booking-service/internal/module/booking/models/entity"
	"turf-booking-service/internal/module/booking/usecases"
	"turf-booking-service/internal/pkg/errors"
	log_internal "turf-booking-service/internal/pkg/log"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	ctx      = context.Background()
	dhaka    = time.FixedZone("Asia/Dhaka", 6*60*60)
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.Nop(), dhaka)
}

func teardown() {
	uc = nil
	repoMock = nil
}

func catalog() []entity.Slot {
	return []entity.Slot{
		{SlotID: "SLOT01PMA", SlotName: "Morning 1", SlotTiming: "6:00 AM - 7:30 AM", Price: decimal.RequireFromString("1000"),
			OfferPrice: decimal.NewNullDecimal(decimal.RequireFromString("952.38"))},
		{SlotID: "SLOT02PMA", SlotName: "Morning 2", SlotTiming: "7:30 AM - 9:00 AM", Price: decimal.RequireFromString("1200")},
	}
}

func TestListSlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		day := time.Date(2026, 10, 20, 0, 0, 0, 0, dhaka)
		repoMock.On("FindSlotsByDate", ctx, mock.MatchedBy(func(d time.Time) bool { return d.Equal(day) })).Return([]entity.SlotAvailability{
			{Serial: 1, SlotID: "SLOT01PMA", Price: decimal.RequireFromString("1000"), Booked: true,
				OfferPrice: decimal.NewNullDecimal(decimal.RequireFromString("952.38")), Offer: sql.NullString{String: "Early bird", Valid: true}},
			{Serial: 2, SlotID: "SLOT02PMA", Price: decimal.RequireFromString("1200")},
		}, nil)

		slots, err := uc.ListSlots(ctx, "2026-10-20")
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Booked)
		require.NotNil(t, slots[0].OfferPrice)
		assert.Equal(t, 952.38, *slots[0].OfferPrice)
		assert.Equal(t, "Early bird", slots[0].Offer)
		assert.False(t, slots[1].Booked)
		assert.Nil(t, slots[1].OfferPrice)
	})

	testCases := []struct {
		name string
		date string
	}{
		{name: "missing date", date: ""},
		{name: "malformed date", date: "20-10-2026"},
		{name: "impossible date", date: "2026-02-30"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			_, err := uc.ListSlots(ctx, tc.date)
			assert.Equal(t, 400, errors.StatusCode(err))
			repoMock.AssertNotCalled(t, "FindSlotsByDate", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingHistory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		created := time.Date(2026, 10, 18, 4, 0, 0, 0, time.UTC)
		repoMock.On("FindBookingHistory", ctx, "M01PMA").Return([]entity.BookingHistory{
			{
				BookingID:     "BOOKED10PMA",
				BookingDate:   time.Date(2026, 10, 20, 0, 0, 0, 0, dhaka),
				CreatedAt:     created,
				SlotIDs:       pq.StringArray{"SLOT01PMA", "SLOT02PMA"},
				Status:        "BOOKED",
				TransactionID: sql.NullString{String: "TXNPMA123456ABCD", Valid: true},
				Amount:        decimal.NewNullDecimal(decimal.RequireFromString("2260.00")),
				PaymentStatus: sql.NullString{String: "SUCCESS", Valid: true},
			},
		}, nil)
		repoMock.On("FindSlotsByIDs", ctx, []string{"SLOT01PMA", "SLOT02PMA"}).Return(catalog(), nil)

		history, err := uc.BookingHistory(ctx, "M01PMA")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "2026-10-20", history[0].BookingDate)
		assert.Equal(t, "2026-10-18T10:00:00+06:00", history[0].CreatedAt)
		assert.Equal(t, 2152.38, history[0].Total)
		assert.Equal(t, 2260.0, history[0].Amount)
		assert.Len(t, history[0].Slots, 2)
		assert.Equal(t, "SUCCESS", history[0].PaymentStatus)
	})

	t.Run("no bookings skips catalog read", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingHistory", ctx, "M02PMA").Return([]entity.BookingHistory{}, nil)

		history, err := uc.BookingHistory(ctx, "M02PMA")
		assert.NoError(t, err)
		assert.Empty(t, history)
		repoMock.AssertNotCalled(t, "FindSlotsByIDs", mock.Anything, mock.Anything)
	})

	t.Run("no session", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.BookingHistory(ctx, "")
		assert.Equal(t, 401, errors.StatusCode(err))
	})
}

func invoiceFixture(invoiceID string) *entity.Invoice {
	return &entity.Invoice{
		BookingID:       "BOOKED10PMA",
		InvoiceID:       invoiceID,
		BookingDate:     time.Date(2026, 10, 20, 0, 0, 0, 0, dhaka),
		SlotIDs:         pq.StringArray{"SLOT01PMA"},
		TransactionID:   "TXNPMA123456ABCD",
		TotalAmount:     decimal.RequireFromString("1000.00"),
		Currency:        "BDT",
		PaidAt:          time.Date(2026, 10, 18, 4, 0, 0, 0, time.UTC),
		PmaID:           "M01PMA",
		MemberFirstName: "Rahim",
		MemberLastName:  "Uddin",
	}
}

func TestInvoice(t *testing.T) {
	t.Run("first request stamps the invoice id", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoice", ctx, "M01PMA", "BOOKED10PMA").Return(invoiceFixture(""), nil)
		repoMock.On("AssignInvoiceID", ctx, "M01PMA", "BOOKED10PMA", "INV10PMA").Return(true, nil)
		repoMock.On("FindSlotsByIDs", ctx, []string{"SLOT01PMA"}).Return(catalog()[:1], nil)

		inv, err := uc.Invoice(ctx, "M01PMA", "BOOKED10PMA")
		require.NoError(t, err)
		assert.Equal(t, "INV10PMA", inv.InvoiceID)
		assert.Equal(t, 952.38, inv.Subtotal)
		assert.Equal(t, 47.62, inv.Vat)
		assert.Equal(t, 1000.0, inv.TotalAmount)
		assert.Equal(t, "Rahim Uddin", inv.Member.Name)
		assert.Equal(t, "Oct 18, 2026, 10:00:00 AM", inv.PaidAt)
		require.Len(t, inv.Slots, 1)
		assert.Equal(t, "Morning 1", inv.Slots[0].SlotName)
	})

	t.Run("already invoiced", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoice", ctx, "M01PMA", "BOOKED10PMA").Return(invoiceFixture("INV10PMA"), nil)
		repoMock.On("FindSlotsByIDs", ctx, []string{"SLOT01PMA"}).Return(catalog()[:1], nil)

		inv, err := uc.Invoice(ctx, "M01PMA", "BOOKED10PMA")
		require.NoError(t, err)
		assert.Equal(t, "INV10PMA", inv.InvoiceID)
		repoMock.AssertNotCalled(t, "AssignInvoiceID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("booking of another member is not found and left untouched", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoice", ctx, "M02PMA", "BOOKED10PMA").Return(nil, nil)

		_, err := uc.Invoice(ctx, "M02PMA", "BOOKED10PMA")
		assert.Equal(t, 404, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "AssignInvoiceID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed booking id", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.Invoice(ctx, "M01PMA", "INV10PMA")
		assert.Equal(t, 400, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "FindInvoice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("booking without settled payment", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoice", ctx, "M01PMA", "BOOKED11PMA").Return(nil, nil)

		_, err := uc.Invoice(ctx, "M01PMA", "BOOKED11PMA")
		assert.Equal(t, 404, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "AssignInvoiceID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no session", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.Invoice(ctx, "", "BOOKED10PMA")
		assert.Equal(t, 401, errors.StatusCode(err))
	})
}
