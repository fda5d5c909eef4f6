// Package gateway is the consumer-side client for the external bill and
// payment API. The service never implements these endpoints, it only
// calls them when preparing and initiating a payment.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-billpay/app/entity"
)

var ErrNotConfigured = errors.New("gateway base url is not configured")

type Config struct {
	BaseURL      string
	MerchantCode string
	UserID       string
	HTTPTimeout  time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type servicePayload struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (c *Client) ListServices(ctx context.Context) ([]entity.Service, error) {
	var payload []servicePayload
	if err := c.doJSON(ctx, http.MethodGet, "/paybill/services", nil, &payload); err != nil {
		return nil, err
	}

	services := make([]entity.Service, 0, len(payload))
	for _, item := range payload {
		services = append(services, entity.Service{Code: item.Code, Name: item.Name})
	}
	return services, nil
}

func (c *Client) ListProviders(ctx context.Context, serviceCode string) ([]entity.Provider, error) {
	serviceCode = strings.TrimSpace(serviceCode)
	if serviceCode == "" {
		return nil, errors.New("service code is required")
	}

	var payload []servicePayload
	path := "/paybill/services/" + url.PathEscape(serviceCode) + "/providers"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	providers := make([]entity.Provider, 0, len(payload))
	for _, item := range payload {
		providers = append(providers, entity.Provider{Code: item.Code, Name: item.Name})
	}
	return providers, nil
}

type QueryBillInput struct {
	ServiceCode  string
	ProviderCode string
	BillNo       string
}

type billDetailPayload struct {
	RespCode    string `json:"respCode"`
	RespMessage string `json:"respMessage"`
	WalletID    string `json:"walletId"`
	ServiceCode string `json:"serviceCode"`
	Provider    struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"provider"`
	BillNo      string `json:"billNo"`
	BillName    string `json:"billName"`
	BillAddress string `json:"billAddress"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	BillCycles  []struct {
		BillID      string `json:"billId"`
		FromDate    string `json:"fromDate"`
		ToDate      string `json:"toDate"`
		BillAmount  int64  `json:"billAmount"`
		Note        string `json:"note"`
		Description string `json:"description"`
		ServiceCode string `json:"serviceCode"`
	} `json:"billCycles"`
	InquiryID string `json:"inquiryId"`
}

func (c *Client) QueryBill(ctx context.Context, input *QueryBillInput) (*entity.BillDetail, error) {
	body := map[string]any{
		"merchantCode": c.cfg.MerchantCode,
		"userId":       c.cfg.UserID,
		"serviceCode":  strings.TrimSpace(input.ServiceCode),
		"providerCode": strings.TrimSpace(input.ProviderCode),
		"billNo":       strings.TrimSpace(input.BillNo),
	}

	var payload struct {
		Response billDetailPayload `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/paybill/query", body, &payload); err != nil {
		return nil, err
	}

	detail := &entity.BillDetail{
		RespCode:    payload.Response.RespCode,
		RespMessage: payload.Response.RespMessage,
		WalletID:    payload.Response.WalletID,
		ServiceCode: payload.Response.ServiceCode,
		Provider: entity.Provider{
			Code: payload.Response.Provider.Code,
			Name: payload.Response.Provider.Name,
		},
		BillNo:      payload.Response.BillNo,
		BillName:    payload.Response.BillName,
		BillAddress: payload.Response.BillAddress,
		Amount:      payload.Response.Amount,
		Currency:    payload.Response.Currency,
		InquiryID:   payload.Response.InquiryID,
	}
	for _, cycle := range payload.Response.BillCycles {
		detail.BillCycles = append(detail.BillCycles, entity.BillCycle{
			BillID:      cycle.BillID,
			FromDate:    cycle.FromDate,
			ToDate:      cycle.ToDate,
			BillAmount:  cycle.BillAmount,
			Note:        cycle.Note,
			Description: cycle.Description,
			ServiceCode: cycle.ServiceCode,
		})
	}
	return detail, nil
}

type InitiatePaymentInput struct {
	Reference string
	BillNo    string
	BillID    string
	Amount    int64
	InquiryID string
}

// InitiatePayment hands the bill over to the gateway and returns the
// redirect URL. The correlation reference travels as trxId and comes back
// on the callback as referenceText.
func (c *Client) InitiatePayment(ctx context.Context, input *InitiatePaymentInput) (string, error) {
	if strings.TrimSpace(input.Reference) == "" {
		return "", errors.New("payment reference is required")
	}

	body := map[string]any{
		"merchantCode": c.cfg.MerchantCode,
		"trxId":        strings.TrimSpace(input.Reference),
		"userId":       c.cfg.UserID,
		"billNo":       strings.TrimSpace(input.BillNo),
		"billId":       strings.TrimSpace(input.BillID),
		"amount":       input.Amount,
		"inquiryId":    strings.TrimSpace(input.InquiryID),
	}

	var payload struct {
		PaymentURL string `json:"paymentURL"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/paybill/pay", body, &payload); err != nil {
		return "", err
	}

	paymentURL := strings.TrimSpace(payload.PaymentURL)
	if paymentURL == "" {
		return "", errors.New("gateway returned no payment url")
	}
	return paymentURL, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	if c.cfg.BaseURL == "" {
		return ErrNotConfigured
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderXRequestID, uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("gateway request %s %s failed: status=%d body=%s", method, path, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
