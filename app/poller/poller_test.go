package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-billpay/app/entity"
)

// scriptedFetcher answers each call from a script; after the script runs
// out it keeps returning the last entry.
type scriptedFetcher struct {
	calls   int
	results []*entity.PaymentResult
	errs    []error
}

func (f *scriptedFetcher) Fetch(ctx context.Context, reference string) (*entity.PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := f.calls
	f.calls++
	if i >= len(f.errs) {
		i = len(f.errs) - 1
	}
	return f.results[i], f.errs[i]
}

func notFoundTimes(n int, then *entity.PaymentResult, thenErr error) *scriptedFetcher {
	f := &scriptedFetcher{}
	for i := 0; i < n; i++ {
		f.results = append(f.results, nil)
		f.errs = append(f.errs, ErrResultNotFound)
	}
	f.results = append(f.results, then)
	f.errs = append(f.errs, thenErr)
	return f
}

func fastPoller(f Fetcher, maxAttempts int) *Poller {
	return New(f, Config{Interval: time.Millisecond, MaxAttempts: maxAttempts})
}

func TestRunSucceedsOnTickK(t *testing.T) {
	result := &entity.PaymentResult{ReferenceText: "abc123", TransactionID: "T1", RespCode: "00", Amount: 50000}
	fetcher := notFoundTimes(4, result, nil)
	p := fastPoller(fetcher, 30)

	outcome, err := p.Run(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if outcome.Status != StatusSucceeded {
		t.Errorf("status = %s", outcome.Status)
	}
	if outcome.Attempts != 5 {
		t.Errorf("attempts = %d, want 5", outcome.Attempts)
	}
	if fetcher.calls != 5 {
		t.Errorf("fetch calls = %d, want exactly 5", fetcher.calls)
	}
	if outcome.Result != result {
		t.Error("outcome should carry the fetched result")
	}
}

func TestRunDeclinedStopsPolling(t *testing.T) {
	result := &entity.PaymentResult{ReferenceText: "abc123", RespCode: "01", RespMessage: "Insufficient funds"}
	fetcher := notFoundTimes(0, result, nil)
	p := fastPoller(fetcher, 30)

	outcome, err := p.Run(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if outcome.Status != StatusDeclined {
		t.Errorf("status = %s", outcome.Status)
	}
	if outcome.Message != "Insufficient funds" {
		t.Errorf("message = %q", outcome.Message)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", fetcher.calls)
	}
}

func TestRunUnknownRespCodeIsTerminal(t *testing.T) {
	result := &entity.PaymentResult{ReferenceText: "abc123", RespCode: "97"}
	p := fastPoller(notFoundTimes(0, result, nil), 30)

	outcome, err := p.Run(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !outcome.Status.Terminal() || outcome.Status != StatusDeclined {
		t.Errorf("status = %s, want a terminal decline classification", outcome.Status)
	}
	if outcome.Result != result {
		t.Error("outcome should surface the result as-is")
	}
}

func TestRunExhaustsAfterMaxAttempts(t *testing.T) {
	fetcher := &scriptedFetcher{results: []*entity.PaymentResult{nil}, errs: []error{ErrResultNotFound}}
	p := fastPoller(fetcher, 7)

	outcome, err := p.Run(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if outcome.Status != StatusExhausted {
		t.Errorf("status = %s", outcome.Status)
	}
	if fetcher.calls != 7 {
		t.Errorf("fetch calls = %d, want exactly 7", fetcher.calls)
	}
	if outcome.Attempts != 7 {
		t.Errorf("attempts = %d, want 7", outcome.Attempts)
	}
}

func TestRunNoReferenceErrorsWithoutFetching(t *testing.T) {
	fetcher := &scriptedFetcher{results: []*entity.PaymentResult{nil}, errs: []error{ErrResultNotFound}}
	p := fastPoller(fetcher, 30)

	outcome, err := p.Run(context.Background(), "   ")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if outcome.Status != StatusErrored {
		t.Errorf("status = %s", outcome.Status)
	}
	if outcome.Message != "no reference provided" {
		t.Errorf("message = %q", outcome.Message)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetch calls = %d, want 0", fetcher.calls)
	}
}

func TestRunTransportErrorIsTerminal(t *testing.T) {
	fetcher := &scriptedFetcher{
		results: []*entity.PaymentResult{nil, nil},
		errs:    []error{ErrResultNotFound, errors.New("connection refused")},
	}
	p := fastPoller(fetcher, 30)

	outcome, err := p.Run(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if outcome.Status != StatusErrored {
		t.Errorf("status = %s", outcome.Status)
	}
	if fetcher.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", fetcher.calls)
	}
}

// cancelAfterFetcher cancels the run's context once it has served n calls,
// simulating the consuming view being torn down between ticks.
type cancelAfterFetcher struct {
	calls  int
	after  int
	cancel context.CancelFunc
}

func (f *cancelAfterFetcher) Fetch(ctx context.Context, reference string) (*entity.PaymentResult, error) {
	f.calls++
	if f.calls == f.after {
		f.cancel()
	}
	return nil, ErrResultNotFound
}

func TestRunCancelledBetweenTicksIssuesNoMoreFetches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := &cancelAfterFetcher{after: 3, cancel: cancel}
	p := New(fetcher, Config{Interval: 50 * time.Millisecond, MaxAttempts: 30})

	outcome, err := p.Run(ctx, "abc123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if outcome != nil {
		t.Errorf("outcome = %+v, want none for a cancelled run", outcome)
	}
	if fetcher.calls != 3 {
		t.Errorf("fetch calls = %d, want exactly 3", fetcher.calls)
	}
}

func TestRunCancelledContextBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fetcher := &scriptedFetcher{results: []*entity.PaymentResult{nil}, errs: []error{ErrResultNotFound}}
	p := fastPoller(fetcher, 30)

	_, err := p.Run(ctx, "abc123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
