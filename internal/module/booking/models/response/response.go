package response

type Slot struct {
	Serial     int      `json:"serial"`
	SlotID     string   `json:"slotId"`
	SlotName   string   `json:"slotName"`
	SlotTiming string   `json:"slotTiming"`
	Price      float64  `json:"price"`
	Type       string   `json:"type"`
	Offer      string   `json:"offer,omitempty"`
	OfferPrice *float64 `json:"offerPrice"`
	Booked     bool     `json:"booked"`
}

type SlotDetail struct {
	SlotID     string   `json:"slot_id"`
	SlotName   string   `json:"slot_name"`
	SlotTiming string   `json:"slot_timing"`
	Type       string   `json:"type,omitempty"`
	Price      float64  `json:"price"`
	OfferPrice *float64 `json:"offer_price"`
}

type BookingHistory struct {
	BookingID     string       `json:"booking_id"`
	BookingDate   string       `json:"booking_date"`
	CreatedAt     string       `json:"created_at"`
	SlotIDs       []string     `json:"slot_id"`
	Status        string       `json:"status"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Amount        float64      `json:"amount"`
	PaymentMethod string       `json:"payment_method,omitempty"`
	PaymentStatus string       `json:"payment_status,omitempty"`
	BankTranID    string       `json:"bank_tran_id,omitempty"`
	Slots         []SlotDetail `json:"slots"`
	Total         float64      `json:"total"`
}

type InvoiceMember struct {
	PmaID string `json:"pma_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Invoice struct {
	InvoiceID     string        `json:"invoice_id"`
	BookingID     string        `json:"booking_id"`
	BookingDate   string        `json:"booking_date"`
	TransactionID string        `json:"transaction_id"`
	PaymentMethod string        `json:"payment_method"`
	CardNo        string        `json:"card_no"`
	BankTranID    string        `json:"bank_tran_id"`
	PaidAt        string        `json:"paid_at"`
	Member        InvoiceMember `json:"member"`
	Slots         []SlotDetail  `json:"slots"`
	Currency      string        `json:"currency"`
	Subtotal      float64       `json:"subtotal"`
	Vat           float64       `json:"vat"`
	TotalAmount   float64       `json:"total_amount"`
}
