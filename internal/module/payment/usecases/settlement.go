package usecases

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"net/url"
	"strings"
	"time"

	"turf-booking-service/internal/module/payment/models/entity"
	"turf-booking-service/internal/module/payment/models/request"
	"turf-booking-service/internal/module/payment/models/response"
	"turf-booking-service/internal/module/payment/repositories"
	"turf-booking-service/internal/pkg/allocator"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/gateway"
	"turf-booking-service/internal/pkg/notification"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateInitiated        State = "INITIATED"
	StateAwaitingCallback State = "AWAITING_CALLBACK"
	StateValidating       State = "VALIDATING"
	StateReconciled       State = "RECONCILED"
	StateRejected         State = "REJECTED"
	StateCancelled        State = "CANCELLED"
)

const (
	FlagSuccess   = "success"
	FlagFailed    = "failed"
	FlagCancelled = "cancelled"
	FlagError     = "error"

	cancellationReason   = "User-initiated cancellation"
	maxBookingIDAttempts = 3
)

// Variant parameterizes the browser callback: the transaction status it records and where
// the browser lands afterwards.
type Variant struct {
	Name   string
	Status string
	Flag   string
	Target string
}

var (
	VariantSuccess = Variant{Name: "success", Status: entity.TransactionStatusSuccess, Flag: FlagSuccess, Target: "/member_dashboard"}
	VariantFail    = Variant{Name: "fail", Status: entity.TransactionStatusFailed, Flag: FlagFailed, Target: "/member_dashboard/bookings"}
	VariantCancel  = Variant{Name: "cancel", Status: entity.TransactionStatusCancelled, Flag: FlagCancelled, Target: "/member_dashboard/bookings"}
)

func variantForStatus(status string) Variant {
	switch status {
	case entity.TransactionStatusSuccess:
		return VariantSuccess
	case entity.TransactionStatusCancelled:
		return VariantCancel
	default:
		return VariantFail
	}
}

type Outcome struct {
	State         State
	Flag          string
	TransactionID string
	BookingID     string
	Duplicate     bool
}

// ErrorOutcome is where the browser goes when a callback could not be processed.
func ErrorOutcome(transactionID string) Outcome {
	return Outcome{Flag: FlagError, TransactionID: transactionID}
}

// RedirectURL builds the status page address for the browser that arrived through v.
func (o Outcome) RedirectURL(baseURL string, v Variant) string {
	target := v.Target
	if o.Flag == FlagSuccess {
		target = VariantSuccess.Target
	}
	q := url.Values{}
	q.Set("payment", o.Flag)
	if o.BookingID != "" && o.Flag == FlagSuccess {
		q.Set("booking_id", o.BookingID)
	}
	return strings.TrimRight(baseURL, "/") + target + "?" + q.Encode()
}

func outcomeForExisting(txn *entity.Transaction) Outcome {
	v := variantForStatus(txn.Status)
	state := StateRejected
	switch v {
	case VariantSuccess:
		state = StateReconciled
	case VariantCancel:
		state = StateCancelled
	}
	return Outcome{
		State:         state,
		Flag:          v.Flag,
		TransactionID: txn.TransactionID,
		BookingID:     txn.BookingID.String,
		Duplicate:     true,
	}
}

func (u *usecase) HandleCallback(ctx context.Context, v Variant, cb *request.Callback) (Outcome, error) {
	tranID := strings.TrimSpace(cb.TranID)
	if !allocator.AcceptedTransactionID(tranID) {
		return ErrorOutcome(tranID), errors.BadRequest("invalid tran_id")
	}

	existing, err := u.repo.FindTransaction(ctx, tranID)
	if err != nil {
		return ErrorOutcome(tranID), err
	}
	if existing != nil {
		u.log.Info(ctx, "callback for processed transaction", tranID, v.Name, existing.Status)
		return outcomeForExisting(existing), nil
	}

	if v.Status == entity.TransactionStatusSuccess {
		return u.settle(ctx, tranID, "", true)
	}
	return u.record(ctx, v, tranID, cb)
}

func (u *usecase) HandleIpn(ctx context.Context, cb *request.Callback) (response.IpnAck, error) {
	tranID := strings.TrimSpace(cb.TranID)
	if !allocator.AcceptedTransactionID(tranID) {
		return response.IpnAck{Status: response.IpnError, Error: "invalid tran_id"}, errors.BadRequest("invalid tran_id")
	}

	existing, err := u.repo.FindTransaction(ctx, tranID)
	if err != nil {
		return response.IpnAck{Status: response.IpnError, Error: errors.Message(err)}, err
	}
	if existing != nil {
		return response.IpnAck{Status: response.IpnAlreadyProcessed}, nil
	}

	out, err := u.settle(ctx, tranID, cb.Status, true)
	if err != nil {
		u.notifier.Notify(ctx, notification.New(notification.KindIpnError,
			"💳 Transaction ID", tranID,
			"🛑 Error", err.Error(),
		))
		return response.IpnAck{Status: response.IpnError, Error: errors.Message(err)}, err
	}

	switch {
	case out.Duplicate:
		return response.IpnAck{Status: response.IpnAlreadyProcessed}, nil
	case out.State == StateReconciled:
		return response.IpnAck{Status: response.IpnReceived}, nil
	default:
		return response.IpnAck{Status: response.IpnError, Error: "payment " + strings.ToLower(string(out.State))}, nil
	}
}

// Reconcile re-runs settlement for a transaction whose earlier attempt failed transiently.
func (u *usecase) Reconcile(ctx context.Context, transactionID string) error {
	existing, err := u.repo.FindTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	out, err := u.settle(ctx, transactionID, "", false)
	if err != nil {
		return err
	}
	u.log.Info(ctx, "reconciled transaction", transactionID, string(out.State))
	return nil
}

// record stores a failed or cancelled callback as received. No booking is written.
func (u *usecase) record(ctx context.Context, v Variant, tranID string, cb *request.Callback) (Outcome, error) {
	raw, _ := json.Marshal(cb)
	amount, err := decimal.NewFromString(strings.TrimSpace(cb.Amount))
	if err != nil {
		amount = decimal.Zero
	}
	currency := cb.Currency
	if currency == "" {
		currency = u.settings.Currency
	}

	txn := entity.Transaction{
		TransactionID: tranID,
		PmaID:         nullString(cb.ValueB),
		BookingID:     nullString(cb.ValueA),
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: cb.CardType,
		CardNo:        cb.CardNo,
		BankTranID:    cb.BankTranID,
		Status:        v.Status,
		RawPayload:    raw,
	}
	kind := notification.KindPaymentFailed
	state := StateRejected
	if v.Status == entity.TransactionStatusCancelled {
		txn.CancellationReason = nullString(cancellationReason)
		kind = notification.KindPaymentCancelled
		state = StateCancelled
	} else if cb.Error != "" {
		txn.CancellationReason = nullString(cb.Error)
	}

	inserted, err := u.repo.RecordTransaction(ctx, txn)
	if err != nil {
		return ErrorOutcome(tranID), err
	}
	if !inserted {
		return u.existingOutcome(ctx, tranID)
	}

	u.notifier.Notify(ctx, notification.New(kind,
		"💳 Transaction ID", tranID,
		"📖 Booking ID", orDash(cb.ValueA),
		"👤 Member", orDash(cb.ValueB),
		"💰 Amount", amount.StringFixed(2)+" "+currency,
		"🛑 Reason", orDash(txn.CancellationReason.String),
	))

	return Outcome{State: state, Flag: v.Flag, TransactionID: tranID}, nil
}

// settle validates tranID with the gateway and turns a valid payment into a booking. It is
// shared by the success redirect, the IPN and the reconciliation job; the transaction id
// primary key decides which of them writes.
func (u *usecase) settle(ctx context.Context, tranID, ipnStatus string, scheduleRetry bool) (Outcome, error) {
	v, err := u.gateway.ValidateTransaction(ctx, tranID)
	if err != nil {
		u.log.Warn(ctx, "error validate transaction", err, tranID)
		if scheduleRetry {
			u.scheduleRetry(ctx, tranID)
		}
		return ErrorOutcome(tranID), err
	}

	if !v.Valid {
		return u.recordInvalid(ctx, tranID, ipnStatus, v)
	}

	meta := v.Metadata
	if !allocator.BookingFormat.Valid(meta.BookingID) || meta.MemberID == "" {
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("gateway echo lacks booking or member id", nil), false)
	}

	bookingDate, err := time.ParseInLocation(dateLayout, datePart(meta.BookingDate), u.settings.Location)
	if err != nil {
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("gateway echo has no usable booking date", err), false)
	}

	slotIDs, err := u.resolveSlots(ctx, tranID, meta)
	if err != nil {
		return u.escalate(ctx, tranID, v, err, false)
	}

	slots, err := u.repo.FindSlotsByIDs(ctx, slotIDs)
	if err != nil {
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("error load slots", err), scheduleRetry)
	}
	if unknown := unknownSlots(slotIDs, slots); len(unknown) > 0 {
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("unknown slots "+strings.Join(unknown, ","), nil), false)
	}

	expected := ExpectedAmount(slots)
	currencyOK := v.Currency == "" || strings.EqualFold(v.Currency, u.settings.Currency)
	if !currencyOK || !AmountMatches(expected, v.Amount) {
		u.log.Error(ctx, "amount mismatch, settlement rejected", tranID, expected.StringFixed(2), v.Amount.StringFixed(2), v.Currency)
		u.notifier.Notify(ctx, notification.New(notification.KindPaymentRejected,
			"💳 Transaction ID", tranID,
			"📖 Booking ID", meta.BookingID,
			"💰 Expected", expected.StringFixed(2)+" "+u.settings.Currency,
			"💸 Reported", v.Amount.StringFixed(2)+" "+v.Currency,
		))
		return Outcome{State: StateRejected, Flag: FlagFailed, TransactionID: tranID}, nil
	}

	booking := entity.Booking{
		BookingID:   meta.BookingID,
		PmaID:       meta.MemberID,
		BookingDate: bookingDate,
		SlotIDs:     slotIDs,
		Status:      entity.BookingStatusBooked,
	}
	txn := entity.Transaction{
		TransactionID: tranID,
		PmaID:         nullString(meta.MemberID),
		BookingID:     nullString(meta.BookingID),
		Amount:        v.Amount,
		Currency:      strings.ToUpper(u.settings.Currency),
		PaymentMethod: v.CardType,
		CardNo:        v.CardMasked,
		BankTranID:    v.BankReference,
		Status:        entity.TransactionStatusSuccess,
		RawPayload:    v.RawPayload,
	}

	for attempt := 1; ; attempt++ {
		err = u.repo.SettleBooking(ctx, booking, txn)
		if !stdErrors.Is(err, repositories.ErrBookingIDTaken) || attempt >= maxBookingIDAttempts {
			break
		}
		// the id may be taken by this very transaction, settled by a concurrent delivery
		if existing, ferr := u.repo.FindTransaction(ctx, tranID); ferr == nil && existing != nil {
			err = repositories.ErrDuplicateTransaction
			break
		}
		next, aerr := u.allocator.Next(ctx)
		if aerr != nil {
			err = aerr
			break
		}
		u.log.Warn(ctx, "booking id already settled, retrying", booking.BookingID, next, tranID)
		booking.BookingID = next
		txn.BookingID = nullString(next)
	}

	switch {
	case err == nil:
	case stdErrors.Is(err, repositories.ErrDuplicateTransaction):
		return u.existingOutcome(ctx, tranID)
	case stdErrors.Is(err, repositories.ErrSlotTaken):
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("slot already booked for "+datePart(meta.BookingDate), err), false)
	default:
		return u.escalate(ctx, tranID, v, errors.ReconciliationError("error settle booking", err), scheduleRetry)
	}

	u.notifier.Notify(ctx, notification.New(notification.KindPaymentSuccess,
		"💳 Transaction ID", tranID,
		"📖 Booking ID", booking.BookingID,
		"👤 Member", booking.PmaID,
		"📅 Date", datePart(meta.BookingDate),
		"🕒 Slots", strings.Join(slotIDs, ", "),
		"💰 Amount", v.Amount.StringFixed(2)+" "+txn.Currency,
		"🏦 Bank Tran ID", orDash(v.BankReference),
		"💳 Card", orDash(v.CardType),
	))

	return Outcome{State: StateReconciled, Flag: FlagSuccess, TransactionID: tranID, BookingID: booking.BookingID}, nil
}

func (u *usecase) recordInvalid(ctx context.Context, tranID, ipnStatus string, v gateway.Validation) (Outcome, error) {
	status, flag, state, kind := entity.TransactionStatusFailed, FlagFailed, StateRejected, notification.KindPaymentFailed
	if strings.EqualFold(ipnStatus, entity.TransactionStatusCancelled) {
		status, flag, state, kind = entity.TransactionStatusCancelled, FlagCancelled, StateCancelled, notification.KindPaymentCancelled
	}

	currency := v.Currency
	if currency == "" {
		currency = u.settings.Currency
	}
	txn := entity.Transaction{
		TransactionID: tranID,
		PmaID:         nullString(v.Metadata.MemberID),
		BookingID:     nullString(v.Metadata.BookingID),
		Amount:        v.Amount,
		Currency:      currency,
		PaymentMethod: v.CardType,
		CardNo:        v.CardMasked,
		BankTranID:    v.BankReference,
		Status:        status,
		RawPayload:    v.RawPayload,
	}

	inserted, err := u.repo.RecordTransaction(ctx, txn)
	if err != nil {
		return ErrorOutcome(tranID), err
	}
	if !inserted {
		return u.existingOutcome(ctx, tranID)
	}

	u.notifier.Notify(ctx, notification.New(kind,
		"💳 Transaction ID", tranID,
		"📖 Booking ID", orDash(v.Metadata.BookingID),
		"🛑 Gateway Status", orDash(v.Status),
	))
	return Outcome{State: state, Flag: flag, TransactionID: tranID}, nil
}

// resolveSlots falls back from the echoed summary to the stored booking row.
func (u *usecase) resolveSlots(ctx context.Context, tranID string, meta gateway.Metadata) ([]string, error) {
	if ids, ok := ParseSlotSummary(meta.SlotSummary); ok {
		return ids, nil
	}
	u.log.Warn(ctx, "slot summary unusable, checking stored booking", tranID, meta.BookingID)

	booking, err := u.repo.FindBookingByID(ctx, meta.BookingID)
	if err != nil {
		return nil, errors.ReconciliationError("error read booking for slot fallback", err)
	}
	// a row already linked to another payment says nothing about this one
	if booking != nil && len(booking.SlotIDs) > 0 &&
		(!booking.TransactionID.Valid || booking.TransactionID.String == tranID) {
		return dedupe(booking.SlotIDs), nil
	}
	return nil, errors.ReconciliationError("no slot ids recoverable for "+meta.BookingID, nil)
}

func (u *usecase) existingOutcome(ctx context.Context, tranID string) (Outcome, error) {
	txn, err := u.repo.FindTransaction(ctx, tranID)
	if err != nil {
		return ErrorOutcome(tranID), err
	}
	if txn == nil {
		return ErrorOutcome(tranID), errors.InternalServerError("transaction vanished after duplicate insert")
	}
	return outcomeForExisting(txn), nil
}

// escalate reports a payment that may have captured money without a booking.
func (u *usecase) escalate(ctx context.Context, tranID string, v gateway.Validation, err error, retry bool) (Outcome, error) {
	u.log.Error(ctx, "settlement needs manual reconciliation", err, tranID, v.Metadata.BookingID)
	u.notifier.Notify(ctx, notification.New(notification.KindReconciliationHelp,
		"💳 Transaction ID", tranID,
		"📖 Booking ID", orDash(v.Metadata.BookingID),
		"👤 Member", orDash(v.Metadata.MemberID),
		"💰 Amount", v.Amount.StringFixed(2)+" "+v.Currency,
		"🛑 Error", err.Error(),
	))
	if retry {
		u.scheduleRetry(ctx, tranID)
	}
	return ErrorOutcome(tranID), err
}

func (u *usecase) scheduleRetry(ctx context.Context, tranID string) {
	if u.scheduler == nil {
		return
	}
	if err := u.scheduler.ScheduleReconciliation(ctx, tranID, u.settings.RetryDelay); err != nil {
		u.log.Error(ctx, "error schedule reconciliation", err, tranID)
	}
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// datePart accepts both 2006-01-02 and full timestamps.
func datePart(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}
