package ethereum

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option configures gateway settings using
// the functional options pattern.
type Option func(*settings)

type settings struct {
	logger *zap.Logger

	readRetryMax      uint
	readRetryInterval time.Duration
	limiter           *rate.Limiter

	receiptPollInterval time.Duration
	confirmationTimeout time.Duration
	gasLimit            uint64
}

// WithLogger sets a custom logger for the gateway. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReadRetry sets how many times a failed read is attempted and the initial
// backoff. maxTries 0 means a single attempt; initial <= 0 keeps the default.
func WithReadRetry(maxTries uint, initial time.Duration) Option {
	return func(s *settings) {
		s.readRetryMax = maxTries
		if initial > 0 {
			s.readRetryInterval = initial
		}
	}
}

// WithReadRateLimit throttles node reads to r per second. r <= 0 disables throttling.
func WithReadRateLimit(r float64, burst int) Option {
	return func(s *settings) {
		if r <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithReceiptPolling sets the receipt poll interval and the confirmation bound.
// Values <= 0 keep the defaults.
func WithReceiptPolling(interval, timeout time.Duration) Option {
	return func(s *settings) {
		if interval > 0 {
			s.receiptPollInterval = interval
		}
		if timeout > 0 {
			s.confirmationTimeout = timeout
		}
	}
}

// WithGasLimit fixes the gas sent with purchases. 0 lets the wallet estimate.
func WithGasLimit(limit uint64) Option {
	return func(s *settings) { s.gasLimit = limit }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:              zap.NewNop(),
		readRetryMax:        3,
		readRetryInterval:   200 * time.Millisecond,
		receiptPollInterval: time.Second,
		confirmationTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
