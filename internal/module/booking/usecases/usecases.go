package usecases

import (
	"context"
	"strings"
	"time"

	"turf-booking-service/internal/module/booking/models/entity"
	"turf-booking-service/internal/module/booking/models/response"
	"turf-booking-service/internal/module/booking/repositories"
	"turf-booking-service/internal/pkg/allocator"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/log"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var vatRate = decimal.RequireFromString("0.05")

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	location *time.Location
}

type Usecase interface {
	// http
	ListSlots(ctx context.Context, date string) ([]response.Slot, error)
	BookingHistory(ctx context.Context, pmaID string) ([]response.BookingHistory, error)
	Invoice(ctx context.Context, pmaID, bookingID string) (response.Invoice, error)
}

func New(repo repositories.Repositories, log log.Logger, location *time.Location) Usecase {
	if location == nil {
		location = time.UTC
	}
	return &usecase{
		repo:     repo,
		log:      log,
		location: location,
	}
}

func (u *usecase) ListSlots(ctx context.Context, date string) ([]response.Slot, error) {
	if date == "" {
		return nil, errors.BadRequest("date parameter is required")
	}
	day, err := time.ParseInLocation(dateLayout, date, u.location)
	if err != nil {
		return nil, errors.BadRequest("invalid date format, use YYYY-MM-DD")
	}

	slots, err := u.repo.FindSlotsByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Slot, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, response.Slot{
			Serial:     s.Serial,
			SlotID:     s.SlotID,
			SlotName:   s.SlotName,
			SlotTiming: s.SlotTiming,
			Price:      s.Price.InexactFloat64(),
			Type:       s.Type,
			Offer:      s.Offer.String,
			OfferPrice: nullableFloat(s.OfferPrice),
			Booked:     s.Booked,
		})
	}
	return resp, nil
}

func (u *usecase) BookingHistory(ctx context.Context, pmaID string) ([]response.BookingHistory, error) {
	if pmaID == "" {
		return nil, errors.UnauthorizedError("member session required")
	}

	rows, err := u.repo.FindBookingHistory(ctx, pmaID)
	if err != nil {
		return nil, err
	}

	// one catalog read for every slot referenced by the history
	var ids []string
	for _, row := range rows {
		ids = append(ids, row.SlotIDs...)
	}
	catalog := map[string]entity.Slot{}
	if len(ids) > 0 {
		slots, err := u.repo.FindSlotsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			catalog[strings.ToUpper(s.SlotID)] = s
		}
	}

	resp := make([]response.BookingHistory, 0, len(rows))
	for _, row := range rows {
		details, total := slotDetails(row.SlotIDs, catalog)
		resp = append(resp, response.BookingHistory{
			BookingID:     row.BookingID,
			BookingDate:   row.BookingDate.In(u.location).Format(dateLayout),
			CreatedAt:     row.CreatedAt.In(u.location).Format(time.RFC3339),
			SlotIDs:       row.SlotIDs,
			Status:        row.Status,
			TransactionID: row.TransactionID.String,
			Amount:        row.Amount.Decimal.InexactFloat64(),
			PaymentMethod: row.PaymentMethod.String,
			PaymentStatus: row.PaymentStatus.String,
			BankTranID:    row.BankTranID.String,
			Slots:         details,
			Total:         total.InexactFloat64(),
		})
	}
	return resp, nil
}

// Invoice returns the printable breakdown of one of the member's settled bookings, stamping
// INV<n>PMA on it the first time. The charged amount is taken from the transaction; subtotal
// and VAT are derived from it. Bookings of other members are reported as not found.
func (u *usecase) Invoice(ctx context.Context, pmaID, bookingID string) (response.Invoice, error) {
	if pmaID == "" {
		return response.Invoice{}, errors.UnauthorizedError("login required")
	}
	bookingID = strings.TrimSpace(bookingID)
	n, ok := allocator.BookingFormat.Parse(bookingID)
	if !ok {
		return response.Invoice{}, errors.BadRequest("valid booking id is required")
	}

	inv, err := u.repo.FindInvoice(ctx, pmaID, bookingID)
	if err != nil {
		return response.Invoice{}, err
	}
	if inv == nil {
		return response.Invoice{}, errors.NotFound("booking not found")
	}

	if inv.InvoiceID == "" {
		invoiceID := allocator.InvoiceFormat.String(n)
		if _, err := u.repo.AssignInvoiceID(ctx, pmaID, bookingID, invoiceID); err != nil {
			return response.Invoice{}, err
		}
		inv.InvoiceID = invoiceID
	}

	slots, err := u.repo.FindSlotsByIDs(ctx, inv.SlotIDs)
	if err != nil {
		return response.Invoice{}, err
	}
	catalog := make(map[string]entity.Slot, len(slots))
	for _, s := range slots {
		catalog[strings.ToUpper(s.SlotID)] = s
	}
	details, _ := slotDetails(inv.SlotIDs, catalog)

	total := inv.TotalAmount.Round(2)
	subtotal := total.Div(decimal.NewFromInt(1).Add(vatRate)).Round(2)

	return response.Invoice{
		InvoiceID:     inv.InvoiceID,
		BookingID:     inv.BookingID,
		BookingDate:   inv.BookingDate.In(u.location).Format(dateLayout),
		TransactionID: inv.TransactionID,
		PaymentMethod: inv.PaymentMethod,
		CardNo:        inv.CardNo,
		BankTranID:    inv.BankTranID,
		PaidAt:        inv.PaidAt.In(u.location).Format("Jan 2, 2006, 3:04:05 PM"),
		Member: response.InvoiceMember{
			PmaID: inv.PmaID,
			Name:  strings.TrimSpace(inv.MemberFirstName + " " + inv.MemberLastName),
			Phone: inv.MemberPhone,
			Email: inv.MemberEmail,
		},
		Slots:       details,
		Currency:    inv.Currency,
		Subtotal:    subtotal.InexactFloat64(),
		Vat:         total.Sub(subtotal).InexactFloat64(),
		TotalAmount: total.InexactFloat64(),
	}, nil
}

func slotDetails(ids []string, catalog map[string]entity.Slot) ([]response.SlotDetail, decimal.Decimal) {
	total := decimal.Zero
	details := make([]response.SlotDetail, 0, len(ids))
	for _, id := range ids {
		s, ok := catalog[strings.ToUpper(id)]
		if !ok {
			details = append(details, response.SlotDetail{SlotID: id})
			continue
		}
		total = total.Add(s.EffectivePrice())
		details = append(details, response.SlotDetail{
			SlotID:     s.SlotID,
			SlotName:   s.SlotName,
			SlotTiming: s.SlotTiming,
			Type:       s.Type,
			Price:      s.Price.InexactFloat64(),
			OfferPrice: nullableFloat(s.OfferPrice),
		})
	}
	return details, total
}

func nullableFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
