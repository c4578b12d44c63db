package response

type Initiate struct {
	PaymentURL    string `json:"paymentUrl"`
	TransactionID string `json:"transactionId"`
	BookingID     string `json:"bookingId"`
}

const (
	IpnReceived         = "IPN_RECEIVED"
	IpnAlreadyProcessed = "ALREADY_PROCESSED"
	IpnError            = "ERROR"
)

type IpnAck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
