package service

import (
	"context"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/types"
)

type resultStore interface {
	Put(reference string, result *entity.PaymentResult)
	Get(reference string) (*entity.PaymentResult, bool)
}

// ResultService is the rendezvous between the gateway's out-of-band
// callback and the client polling for the outcome. Record and Fetch may
// run concurrently for unrelated references; the store arbitrates.
type ResultService struct {
	store resultStore
}

func NewResultService(store resultStore) *ResultService {
	return &ResultService{store: store}
}

// Record stores a callback payload under its correlation reference.
// Repeated callbacks for the same reference overwrite, last write wins.
func (s *ResultService) Record(ctx context.Context, req *types.RecordResultRequest) (*entity.PaymentResult, error) {
	reference := strings.TrimSpace(req.ReferenceText)
	if reference == "" {
		return nil, ErrReferenceRequired
	}

	result := &entity.PaymentResult{
		TrxID:          req.TrxID,
		TransactionID:  req.TransactionID,
		ReferenceText:  reference,
		UserID:         req.UserID,
		ServiceCode:    req.ServiceCode,
		ProviderCode:   req.ProviderCode,
		ProviderName:   req.ProviderName,
		Amount:         req.Amount,
		BillNo:         req.BillNo,
		BillID:         req.BillID,
		BillCycle:      req.BillCycle,
		BillName:       req.BillName,
		BillAddress:    req.BillAddress,
		AdditionalData: req.AdditionalData,
		RespCode:       req.RespCode,
		RespMessage:    req.RespMessage,
		ReceivedAt:     time.Now().UTC(),
	}

	s.store.Put(reference, result)
	return result, nil
}

// Fetch returns the stored result without consuming it, so reloads and
// racing poll ticks see the same answer.
func (s *ResultService) Fetch(ctx context.Context, reference string) (*entity.PaymentResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrReferenceRequired
	}

	result, ok := s.store.Get(reference)
	if !ok {
		return nil, ErrResultNotFound
	}
	return result, nil
}
