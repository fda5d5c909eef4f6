package entity

type Service struct {
	Code string
	Name string
}

type Provider struct {
	Code string
	Name string
}

type BillCycle struct {
	BillID      string
	FromDate    string
	ToDate      string
	BillAmount  int64
	Note        string
	Description string
	ServiceCode string
}

// BillDetail is the gateway's answer to a bill query. InquiryID has to be
// echoed back on payment initiation.
type BillDetail struct {
	RespCode    string
	RespMessage string
	WalletID    string
	ServiceCode string
	Provider    Provider
	BillNo      string
	BillName    string
	BillAddress string
	Amount      int64
	Currency    string
	BillCycles  []BillCycle
	InquiryID   string
}
