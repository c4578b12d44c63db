package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"turf-booking-service/internal/module/payment/models/entity"
	"turf-booking-service/internal/module/payment/models/request"
	"turf-booking-service/internal/module/payment/models/response"
	"turf-booking-service/internal/module/payment/repositories"
	"turf-booking-service/internal/pkg/allocator"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/gateway"
	"turf-booking-service/internal/pkg/log"
	"turf-booking-service/internal/pkg/notification"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type Gateway interface {
	CreateSession(ctx context.Context, req gateway.SessionRequest) (gateway.Session, error)
	ValidateTransaction(ctx context.Context, transactionID string) (gateway.Validation, error)
}

type BookingIDAllocator interface {
	Next(ctx context.Context) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, msg notification.Message)
}

type ReconcileScheduler interface {
	ScheduleReconciliation(ctx context.Context, transactionID string, delay time.Duration) error
}

type Settings struct {
	BaseURL    string
	Currency   string
	RetryDelay time.Duration
	Location   *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type usecase struct {
	repo      repositories.Repositories
	gateway   Gateway
	allocator BookingIDAllocator
	notifier  Notifier
	scheduler ReconcileScheduler
	settings  Settings
	log       log.Logger
	now       func() time.Time
}

type Usecase interface {
	// http
	Initiate(ctx context.Context, memberID string, req *request.Initiate) (response.Initiate, error)
	HandleCallback(ctx context.Context, variant Variant, cb *request.Callback) (Outcome, error)
	HandleIpn(ctx context.Context, cb *request.Callback) (response.IpnAck, error)
	// scheduler
	Reconcile(ctx context.Context, transactionID string) error
}

func New(repo repositories.Repositories, gw Gateway, alloc BookingIDAllocator, notifier Notifier, scheduler ReconcileScheduler, settings Settings, log log.Logger) Usecase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &usecase{
		repo:      repo,
		gateway:   gw,
		allocator: alloc,
		notifier:  notifier,
		scheduler: scheduler,
		settings:  settings,
		log:       log,
		now:       settings.Now,
	}
}

func (u *usecase) Initiate(ctx context.Context, memberID string, req *request.Initiate) (response.Initiate, error) {
	if memberID == "" {
		return response.Initiate{}, errors.UnauthorizedError("member session required")
	}

	if missing := missingFields(req); len(missing) > 0 {
		return response.Initiate{}, errors.BadRequest("missing required fields: " + strings.Join(missing, ", "))
	}

	bookingDate, err := time.ParseInLocation(dateLayout, req.BookingData.SelectedDate, u.settings.Location)
	if err != nil {
		return response.Initiate{}, errors.BadRequest("bookingData.selectedDate must be YYYY-MM-DD")
	}
	now := u.now().In(u.settings.Location)
	today := now.Format(dateLayout)
	if req.BookingData.SelectedDate < today {
		return response.Initiate{}, errors.BadRequest("bookingData.selectedDate is in the past")
	}

	member, err := u.repo.FindMemberByID(ctx, memberID)
	if err != nil {
		return response.Initiate{}, err
	}
	if member == nil {
		return response.Initiate{}, errors.UnauthorizedError("member not found")
	}

	slotIDs := make([]string, 0, len(req.BookingData.SelectedSlots))
	for _, s := range req.BookingData.SelectedSlots {
		slotIDs = append(slotIDs, s.SlotID)
	}
	slotIDs = dedupe(slotIDs)

	slots, err := u.repo.FindSlotsByIDs(ctx, slotIDs)
	if err != nil {
		return response.Initiate{}, err
	}
	if unknown := unknownSlots(slotIDs, slots); len(unknown) > 0 {
		return response.Initiate{}, errors.BadRequest("unknown slots: " + strings.Join(unknown, ", "))
	}
	if req.BookingData.SelectedDate == today {
		if over := endedSlots(slots, bookingDate, now); len(over) > 0 {
			return response.Initiate{}, errors.BadRequest("slots already over today: " + strings.Join(over, ", "))
		}
	}

	claimed, err := u.repo.FindClaimedSlots(ctx, bookingDate, slotIDs)
	if err != nil {
		return response.Initiate{}, err
	}
	if len(claimed) > 0 {
		return response.Initiate{}, errors.Conflict("slots already booked: " + strings.Join(claimed, ", "))
	}

	amount := ExpectedAmount(slots)
	if req.Amount > 0 && !AmountMatches(amount, decimal.NewFromFloat(req.Amount)) {
		return response.Initiate{}, errors.BadRequest(fmt.Sprintf("amount mismatch: expected %s", amount.StringFixed(2)))
	}

	bookingID, err := u.allocator.Next(ctx)
	if err != nil {
		return response.Initiate{}, errors.InternalServerError("error allocate booking id")
	}

	tranID, err := allocator.NewTransactionID(u.now())
	if err != nil {
		return response.Initiate{}, errors.InternalServerError("error generate transaction id")
	}

	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.SlotName
	}

	session, err := u.gateway.CreateSession(ctx, gateway.SessionRequest{
		Amount:        amount,
		Currency:      u.settings.Currency,
		TransactionID: tranID,
		Customer: gateway.Customer{
			Name:  member.FullName(),
			Email: member.Email,
			Phone: member.Phone,
		},
		SuccessURL: u.callbackURL("success", tranID),
		FailURL:    u.callbackURL("fail", tranID),
		CancelURL:  u.callbackURL("cancel", tranID),
		IpnURL:     strings.TrimRight(u.settings.BaseURL, "/") + "/payment/ipn",
		Metadata: gateway.Metadata{
			BookingID:   bookingID,
			MemberID:    member.PmaID,
			BookingDate: req.BookingData.SelectedDate,
			SlotSummary: encodeSlotSummary(slotIDs, names),
		},
	})
	if err != nil {
		u.log.Warn(ctx, "error create gateway session", err, tranID)
		return response.Initiate{}, err
	}

	u.notifier.Notify(ctx, notification.New(notification.KindPaymentInitiated,
		"🆔 Transaction ID", tranID,
		"📖 Booking ID", bookingID,
		"👤 Member", fmt.Sprintf("%s (%s)", member.FullName(), member.PmaID),
		"📅 Date", req.BookingData.SelectedDate,
		"🕒 Slots", strings.Join(slotIDs, ", "),
		"💰 Amount", amount.StringFixed(2)+" "+u.settings.Currency,
	))

	return response.Initiate{
		PaymentURL:    session.RedirectURL,
		TransactionID: tranID,
		BookingID:     bookingID,
	}, nil
}

func (u *usecase) callbackURL(kind, tranID string) string {
	return fmt.Sprintf("%s/payment/%s?tran_id=%s", strings.TrimRight(u.settings.BaseURL, "/"), kind, tranID)
}

func missingFields(req *request.Initiate) []string {
	if req == nil || req.BookingData == nil {
		return []string{"bookingData"}
	}
	var missing []string
	if req.BookingData.SelectedDate == "" {
		missing = append(missing, "bookingData.selectedDate")
	}
	if len(req.BookingData.SelectedSlots) == 0 {
		missing = append(missing, "bookingData.selectedSlots")
	}
	for _, s := range req.BookingData.SelectedSlots {
		if s.SlotID == "" {
			missing = append(missing, "bookingData.selectedSlots[].slotId")
			break
		}
	}
	return missing
}

func unknownSlots(ids []string, slots []entity.Slot) []string {
	found := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		found[strings.ToUpper(s.SlotID)] = struct{}{}
	}
	var unknown []string
	for _, id := range ids {
		if _, ok := found[strings.ToUpper(id)]; !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}
