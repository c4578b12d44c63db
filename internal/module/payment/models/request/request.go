package request

type SelectedSlot struct {
	SlotID     string  `json:"slotId"`
	SlotName   string  `json:"slotName"`
	SlotTiming string  `json:"slotTiming"`
	Price      float64 `json:"price"`
	OfferPrice float64 `json:"offerPrice"`
}

type BookingDraft struct {
	SelectedDate  string         `json:"selectedDate"`
	SelectedSlots []SelectedSlot `json:"selectedSlots"`
}

// Initiate is what the booking page posts. Amount is what the browser displayed; the
// charged amount is always recomputed from stored slot prices.
type Initiate struct {
	Amount      float64       `json:"amount"`
	BookingData *BookingDraft `json:"bookingData"`
}

// Callback carries the gateway's redirect or IPN fields. Only TranID is trusted, and only
// after validation.
type Callback struct {
	TranID     string `json:"tran_id" form:"tran_id" query:"tran_id"`
	Status     string `json:"status" form:"status"`
	Amount     string `json:"amount" form:"amount"`
	Currency   string `json:"currency" form:"currency"`
	CardType   string `json:"card_type" form:"card_type"`
	CardNo     string `json:"card_no" form:"card_no"`
	BankTranID string `json:"bank_tran_id" form:"bank_tran_id"`
	Error      string `json:"error" form:"error"`
	ValueA     string `json:"value_a" form:"value_a"`
	ValueB     string `json:"value_b" form:"value_b"`
	ValueC     string `json:"value_c" form:"value_c"`
	ValueD     string `json:"value_d" form:"value_d"`
}
