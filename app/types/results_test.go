package types

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newEchoContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestNewRecordResultRequestFromContext(t *testing.T) {
	ctx := newEchoContext(t, "POST", "/api/payment-callback",
		`{"referenceText":"  abc123  ","transactionId":"T1","respCode":"00","amount":50000}`)

	req, err := NewRecordResultRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if req.ReferenceText != "abc123" {
		t.Errorf("referenceText = %q, want trimmed abc123", req.ReferenceText)
	}
	if req.TransactionID != "T1" {
		t.Errorf("transactionId = %q", req.TransactionID)
	}
	if req.Amount != 50000 {
		t.Errorf("amount = %d", req.Amount)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("validate failed: %v", err)
	}
}

func TestNewRecordResultRequestFromContextInvalidJSON(t *testing.T) {
	ctx := newEchoContext(t, "POST", "/api/payment-callback", `{"referenceText":`)

	if _, err := NewRecordResultRequestFromContext(ctx); err == nil {
		t.Fatal("expected bind error for malformed body")
	}
}

func TestRecordResultRequestValidateMissingReference(t *testing.T) {
	req := &RecordResultRequest{TransactionID: "T1", RespCode: "00"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for missing referenceText")
	}
}

func TestNewFetchResultRequestFromContext(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		reference string
		wantErr   bool
	}{
		{name: "present", target: "/api/payment-callback?referenceText=abc123", reference: "abc123"},
		{name: "trimmed", target: "/api/payment-callback?referenceText=%20abc123%20", reference: "abc123"},
		{name: "missing", target: "/api/payment-callback", wantErr: true},
		{name: "blank", target: "/api/payment-callback?referenceText=%20%20", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newEchoContext(t, "GET", tt.target, "")
			req := NewFetchResultRequestFromContext(ctx)
			err := req.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if err.Error() != "Transaction ID is required" {
					t.Errorf("error = %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("validate failed: %v", err)
			}
			if req.ReferenceText != tt.reference {
				t.Errorf("referenceText = %q, want %q", req.ReferenceText, tt.reference)
			}
		})
	}
}
