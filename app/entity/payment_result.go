package entity

import "time"

const (
	// Gateway response codes carried on a payment callback.
	RespCodeApproved = "00"
	RespCodeDeclined = "01"
)

// PaymentResult is one gateway callback, keyed by ReferenceText. It is
// written once by the callback receiver and never mutated afterwards.
type PaymentResult struct {
	TrxID          string
	TransactionID  string
	ReferenceText  string
	UserID         string
	ServiceCode    string
	ProviderCode   string
	ProviderName   string
	Amount         int64
	BillNo         string
	BillID         string
	BillCycle      string
	BillName       string
	BillAddress    string
	AdditionalData string
	RespCode       string
	RespMessage    string

	ReceivedAt time.Time
}

// Approved reports whether the gateway accepted the payment.
func (r *PaymentResult) Approved() bool {
	return r.RespCode == RespCodeApproved
}
