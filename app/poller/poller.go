// Package poller implements the client side of payment-result
// reconciliation: after the redirect to the gateway, it repeatedly asks
// the callback receiver's read path whether a result has arrived for the
// correlation reference, with a fixed delay and a bounded attempt budget.
package poller

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/factory"
)

// ErrResultNotFound is the fetcher's "nothing recorded yet" answer. It is
// not a failure; it drives the retry loop.
var ErrResultNotFound = errors.New("payment result not found")

type Status int

const (
	StatusWaiting Status = iota
	StatusSucceeded
	StatusDeclined
	StatusExhausted
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusSucceeded:
		return "succeeded"
	case StatusDeclined:
		return "declined"
	case StatusExhausted:
		return "exhausted"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further fetches will be issued.
func (s Status) Terminal() bool {
	return s != StatusWaiting
}

type Fetcher interface {
	Fetch(ctx context.Context, reference string) (*entity.PaymentResult, error)
}

type Config struct {
	Interval    time.Duration
	MaxAttempts int
}

const (
	defaultInterval    = 2 * time.Second
	defaultMaxAttempts = 30
)

type Poller struct {
	fetcher     Fetcher
	interval    time.Duration
	maxAttempts int
	logger      logrus.FieldLogger
}

func New(fetcher Fetcher, cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Poller{
		fetcher:     fetcher,
		interval:    interval,
		maxAttempts: maxAttempts,
		logger:      factory.NewModuleLogger("result-poller"),
	}
}

// Outcome is the terminal state of one polling run.
type Outcome struct {
	Status   Status
	Message  string
	Result   *entity.PaymentResult
	Attempts int
}

// Run polls until a result is found, the attempt budget is spent, or a
// fetch fails. It returns a non-nil Outcome for every terminal state;
// cancellation instead returns ctx.Err() with no outcome, so a discarded
// run never reports a state.
func (p *Poller) Run(ctx context.Context, ref string) (*Outcome, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return &Outcome{Status: StatusErrored, Message: "no reference provided"}, nil
	}

	wait := time.NewTimer(p.interval)
	defer wait.Stop()

	for attempts := 1; ; attempts++ {
		result, err := p.fetcher.Fetch(ctx, ref)
		switch {
		case err == nil:
			return p.conclude(result, attempts), nil
		case errors.Is(err, ErrResultNotFound):
			if attempts >= p.maxAttempts {
				p.logger.WithFields(logrus.Fields{"reference": ref, "attempts": attempts}).Warn("Poll budget exhausted")
				return &Outcome{
					Status:   StatusExhausted,
					Message:  "no payment result yet, check back later",
					Attempts: attempts,
				}, nil
			}
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			p.logger.WithError(err).WithField("reference", ref).Error("Fetch payment result failed")
			return &Outcome{
				Status:   StatusErrored,
				Message:  "failed to fetch the payment result, try again later",
				Attempts: attempts,
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wait.C:
			wait.Reset(p.interval)
		}
	}
}

func (p *Poller) conclude(result *entity.PaymentResult, attempts int) *Outcome {
	outcome := &Outcome{Result: result, Attempts: attempts}
	if result.Approved() {
		outcome.Status = StatusSucceeded
		outcome.Message = "payment successful"
	} else {
		// Any recorded result ends the poll; a non-approved code is a
		// gateway decline, not a mechanism failure.
		outcome.Status = StatusDeclined
		outcome.Message = result.RespMessage
		if strings.TrimSpace(outcome.Message) == "" {
			outcome.Message = "payment declined"
		}
	}

	p.logger.WithFields(logrus.Fields{
		"reference": result.ReferenceText,
		"resp_code": result.RespCode,
		"attempts":  attempts,
		"status":    outcome.Status.String(),
	}).Info("Poll concluded")

	return outcome
}
