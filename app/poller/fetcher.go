package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/mapper"
	"github.com/vibast-solutions/ms-go-billpay/app/types"
)

// HTTPFetcher reads the callback receiver's fetch endpoint. A 404 maps to
// ErrResultNotFound; any other non-200 is a transport-level failure.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, reference string) (*entity.PaymentResult, error) {
	target := f.baseURL + "/api/payment-callback?referenceText=" + url.QueryEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrResultNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch payment result failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var payload types.PaymentResultResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode payment result: %w", err)
	}
	return mapper.ResultFromResponse(&payload), nil
}
