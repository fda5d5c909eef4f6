package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// RecordResultRequest is the gateway's callback payload. ReferenceText is
// the correlation reference minted before the redirect; everything else is
// echoed bill and transaction metadata.
type RecordResultRequest struct {
	TrxID          string `json:"trxId"`
	TransactionID  string `json:"transactionId"`
	ReferenceText  string `json:"referenceText"`
	UserID         string `json:"userId"`
	ServiceCode    string `json:"serviceCode"`
	ProviderCode   string `json:"providerCode"`
	ProviderName   string `json:"providerName"`
	Amount         int64  `json:"amount"`
	BillNo         string `json:"billNo"`
	BillID         string `json:"billId"`
	BillCycle      string `json:"billCycle"`
	BillName       string `json:"billName"`
	BillAddress    string `json:"billAddress"`
	AdditionalData string `json:"additionalData"`
	RespCode       string `json:"respCode"`
	RespMessage    string `json:"respMessage"`
}

func NewRecordResultRequestFromContext(ctx echo.Context) (*RecordResultRequest, error) {
	var body RecordResultRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.ReferenceText = strings.TrimSpace(body.ReferenceText)
	body.TrxID = strings.TrimSpace(body.TrxID)
	body.TransactionID = strings.TrimSpace(body.TransactionID)
	body.RespCode = strings.TrimSpace(body.RespCode)

	return &body, nil
}

func (r *RecordResultRequest) Validate() error {
	if r.ReferenceText == "" {
		return errors.New("referenceText is required")
	}
	return nil
}

type FetchResultRequest struct {
	ReferenceText string
}

func NewFetchResultRequestFromContext(ctx echo.Context) *FetchResultRequest {
	return &FetchResultRequest{
		ReferenceText: strings.TrimSpace(ctx.QueryParam("referenceText")),
	}
}

func (r *FetchResultRequest) Validate() error {
	if r.ReferenceText == "" {
		return errors.New("Transaction ID is required")
	}
	return nil
}

// PaymentResultResponse mirrors the callback payload on the read path, so
// a poller sees exactly what the gateway sent.
type PaymentResultResponse struct {
	TrxID          string `json:"trxId"`
	TransactionID  string `json:"transactionId"`
	ReferenceText  string `json:"referenceText"`
	UserID         string `json:"userId"`
	ServiceCode    string `json:"serviceCode"`
	ProviderCode   string `json:"providerCode"`
	ProviderName   string `json:"providerName"`
	Amount         int64  `json:"amount"`
	BillNo         string `json:"billNo"`
	BillID         string `json:"billId"`
	BillCycle      string `json:"billCycle"`
	BillName       string `json:"billName"`
	BillAddress    string `json:"billAddress"`
	AdditionalData string `json:"additionalData"`
	RespCode       string `json:"respCode"`
	RespMessage    string `json:"respMessage"`
}
