package gateway

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"turf-booking-service/config"
	"turf-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

const (
	sessionPath    = "/gwprocess/v4/api.php"
	validationPath = "/validator/api/merchantTransIDvalidationAPI.php"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

// Metadata travels through the gateway untouched and is echoed back on validation.
type Metadata struct {
	BookingID   string
	MemberID    string
	BookingDate string
	SlotSummary string
}

type SessionRequest struct {
	Amount        decimal.Decimal
	Currency      string
	TransactionID string
	Customer      Customer
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IpnURL        string
	Metadata      Metadata
}

type Session struct {
	RedirectURL string
	SessionKey  string
}

type Validation struct {
	Valid         bool
	Status        string
	Amount        decimal.Decimal
	Currency      string
	CardType      string
	CardMasked    string
	BankReference string
	Metadata      Metadata
	RawPayload    []byte
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type validationElement struct {
	Status         string `json:"status"`
	TranID         string `json:"tran_id"`
	Amount         string `json:"amount"`
	CurrencyAmount string `json:"currency_amount"`
	Currency       string `json:"currency"`
	CurrencyType   string `json:"currency_type"`
	CardType       string `json:"card_type"`
	CardNo         string `json:"card_no"`
	BankTranID     string `json:"bank_tran_id"`
	ValueA         string `json:"value_a"`
	ValueB         string `json:"value_b"`
	ValueC         string `json:"value_c"`
	ValueD         string `json:"value_d"`
}

type validationResponse struct {
	APIConnect string              `json:"APIConnect"`
	Element    []validationElement `json:"element"`
}

type Client struct {
	http Doer
	cfg  *config.GatewayConfig
}

func New(httpClient Doer, cfg *config.GatewayConfig) *Client {
	return &Client{http: httpClient, cfg: cfg}
}

func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	span, ctx := apm.StartSpan(ctx, "gateway.CreateSession", "external.http")
	defer span.End()

	form := url.Values{}
	form.Set("store_id", c.cfg.StoreID)
	form.Set("store_passwd", c.cfg.StorePassword)
	form.Set("total_amount", req.Amount.StringFixed(2))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IpnURL)
	form.Set("cus_name", req.Customer.Name)
	form.Set("cus_email", req.Customer.Email)
	form.Set("cus_phone", req.Customer.Phone)
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("product_name", "Turf Booking")
	form.Set("product_category", "Sports")
	form.Set("product_profile", "general")
	form.Set("value_a", req.Metadata.BookingID)
	form.Set("value_b", req.Metadata.MemberID)
	form.Set("value_c", req.Metadata.BookingDate)
	form.Set("value_d", req.Metadata.SlotSummary)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(sessionPath), strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, errors.InternalServerError("error build gateway request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(httpReq)
	if err != nil {
		return Session{}, err
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Session{}, errors.GatewayUnavailable("malformed gateway session response", err)
	}

	if resp.Status != "SUCCESS" || resp.GatewayPageURL == "" {
		reason := resp.FailedReason
		if reason == "" {
			reason = "status " + resp.Status
		}
		return Session{}, errors.GatewayRejected(reason)
	}

	return Session{RedirectURL: resp.GatewayPageURL, SessionKey: resp.SessionKey}, nil
}

// ValidateTransaction asks the gateway for the authoritative state of tranID. A transport
// failure is returned as an error and never as an invalid result.
func (c *Client) ValidateTransaction(ctx context.Context, tranID string) (Validation, error) {
	span, ctx := apm.StartSpan(ctx, "gateway.ValidateTransaction", "external.http")
	defer span.End()

	q := url.Values{}
	q.Set("tran_id", tranID)
	q.Set("store_id", c.cfg.StoreID)
	q.Set("store_passwd", c.cfg.StorePassword)
	q.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(validationPath)+"?"+q.Encode(), nil)
	if err != nil {
		return Validation{}, errors.InternalServerError("error build gateway request")
	}

	body, err := c.do(httpReq)
	if err != nil {
		return Validation{}, err
	}

	var resp validationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Validation{}, errors.GatewayUnavailable("malformed gateway validation response", err)
	}

	if resp.APIConnect != "" && resp.APIConnect != "DONE" {
		return Validation{}, errors.GatewayUnavailable("gateway validation api: "+resp.APIConnect, nil)
	}

	if len(resp.Element) == 0 {
		return Validation{Valid: false, Status: "NOT_FOUND", RawPayload: body}, nil
	}

	el := pickElement(resp.Element)
	amount, err := parseAmount(el.CurrencyAmount, el.Amount)
	if err != nil {
		return Validation{}, errors.GatewayUnavailable("malformed gateway amount", err)
	}
	currency := el.CurrencyType
	if currency == "" {
		currency = el.Currency
	}

	return Validation{
		Valid:         el.Status == "VALID" || el.Status == "VALIDATED",
		Status:        el.Status,
		Amount:        amount,
		Currency:      currency,
		CardType:      el.CardType,
		CardMasked:    el.CardNo,
		BankReference: el.BankTranID,
		Metadata: Metadata{
			BookingID:   el.ValueA,
			MemberID:    el.ValueB,
			BookingDate: el.ValueC,
			SlotSummary: el.ValueD,
		},
		RawPayload: body,
	}, nil
}

func parseAmount(candidates ...string) (decimal.Decimal, error) {
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		return decimal.NewFromString(strings.TrimSpace(c))
	}
	return decimal.Zero, nil
}

// pickElement prefers a validated attempt when the gateway lists several.
func pickElement(elements []validationElement) validationElement {
	for _, el := range elements {
		if el.Status == "VALID" || el.Status == "VALIDATED" {
			return el
		}
	}
	return elements[0]
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errors.GatewayUnavailable(fmt.Sprintf("gateway responded %d", resp.StatusCode), nil)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.GatewayRejected(fmt.Sprintf("http %d", resp.StatusCode))
	}
	return body, nil
}

func classify(err error) error {
	if stdErrors.Is(err, circuit.ErrBreakerTimeout) || stdErrors.Is(err, context.DeadlineExceeded) {
		return errors.GatewayTimeout("gateway timeout", err)
	}
	var netErr net.Error
	if stdErrors.As(err, &netErr) && netErr.Timeout() {
		return errors.GatewayTimeout("gateway timeout", err)
	}
	if stdErrors.Is(err, circuit.ErrBreakerOpen) {
		return errors.GatewayUnavailable("gateway circuit open", err)
	}
	return errors.GatewayUnavailable("gateway unreachable", err)
}
