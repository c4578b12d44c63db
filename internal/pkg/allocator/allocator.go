package allocator

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"turf-booking-service/internal/pkg/log"
)

// Format describes a human readable sequential id such as BOOKED07PMA.
type Format struct {
	Prefix string
	Suffix string
	Width  int
	re     *regexp.Regexp
}

func NewFormat(prefix, suffix string, width int) Format {
	return Format{
		Prefix: prefix,
		Suffix: suffix,
		Width:  width,
		re:     regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(suffix) + "$"),
	}
}

var (
	BookingFormat = NewFormat("BOOKED", "PMA", 2)
	MemberFormat  = NewFormat("M", "PMA", 2)
	InvoiceFormat = NewFormat("INV", "PMA", 2)
)

func (f Format) String(n int) string {
	return fmt.Sprintf("%s%0*d%s", f.Prefix, f.Width, n, f.Suffix)
}

// Parse returns the numeric part of id, or false when id does not have this format.
func (f Format) Parse(id string) (int, bool) {
	m := f.re.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (f Format) Valid(id string) bool {
	_, ok := f.Parse(id)
	return ok
}

// LastFunc returns the most recently issued id, or "" when none exists.
type LastFunc func(ctx context.Context) (string, error)

// Sequence hands out numbers strictly greater than floor and than anything it handed out before.
type Sequence interface {
	Next(ctx context.Context, key string, floor int) (int, error)
}

// Allocator derives the next id from the last stored one. Without a Sequence two concurrent
// callers can derive the same id; the insert side must then reject the loser and retry.
type Allocator struct {
	format Format
	key    string
	last   LastFunc
	seq    Sequence
	log    log.Logger
}

func New(format Format, key string, last LastFunc, seq Sequence, log log.Logger) *Allocator {
	return &Allocator{format: format, key: key, last: last, seq: seq, log: log}
}

func (a *Allocator) Next(ctx context.Context) (string, error) {
	lastID, err := a.last(ctx)
	if err != nil {
		return "", err
	}

	n, ok := a.format.Parse(lastID)
	if !ok && lastID != "" {
		a.log.Warn(ctx, "unexpected id format, counting from zero", lastID)
	}

	if a.seq == nil {
		return a.format.String(n + 1), nil
	}

	next, err := a.seq.Next(ctx, a.key, n)
	if err != nil {
		a.log.Warn(ctx, "error sequence next, using stored id", err)
		return a.format.String(n + 1), nil
	}
	return a.format.String(next), nil
}

const (
	transactionPrefix = "TXNPMA"
	alphabet          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	transactionPattern = regexp.MustCompile(`^TXNPMA\d{6}[A-Z0-9]{4}$`)
	// earlier releases issued TXNPMA<3 digits><up to 3 alnum>
	acceptedTransactionPattern = regexp.MustCompile(`^TXNPMA\d+[A-Z0-9]+$`)
)

const maxTransactionIDLen = 32

// NewTransactionID combines the last six digits of the millisecond clock with four random characters.
func NewTransactionID(now time.Time) (string, error) {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(alphabet)))
	for i := range suffix {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = alphabet[idx.Int64()]
	}
	return fmt.Sprintf("%s%06d%s", transactionPrefix, now.UnixMilli()%1_000_000, suffix), nil
}

// ValidTransactionID reports whether id has the shape NewTransactionID issues.
func ValidTransactionID(id string) bool {
	return transactionPattern.MatchString(id)
}

// AcceptedTransactionID is the looser check for ids arriving from the gateway, which may have
// been issued before the current format.
func AcceptedTransactionID(id string) bool {
	return len(id) <= maxTransactionIDLen && acceptedTransactionPattern.MatchString(id)
}
