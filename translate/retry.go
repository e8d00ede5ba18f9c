package translate

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tsawler/shatranj/model"
)

// RetryConfig holds configuration for the retrying wrapper.
type RetryConfig struct {
	// Attempts is the number of tries before giving up. Default: 3.
	Attempts int

	// Backoff is the fixed pause between tries. Default: 1s.
	Backoff time.Duration

	// RequestsPerMinute caps the request rate to the underlying
	// service across all workers. Zero disables the limiter.
	RequestsPerMinute int
}

// DefaultRetryConfig returns sensible default configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts: 3,
		Backoff:  time.Second,
	}
}

// Retrier wraps a Translator with bounded retries, a fixed backoff and
// an optional shared rate limit. An empty translation counts as a
// failed attempt. When every attempt fails, the last error is returned
// and the caller decides whether to degrade to the original text.
type Retrier struct {
	inner   Translator
	config  RetryConfig
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewRetrier wraps a translator with retry behavior.
func NewRetrier(inner Translator, config RetryConfig, log *zap.Logger) *Retrier {
	if config.Attempts <= 0 {
		config.Attempts = DefaultRetryConfig().Attempts
	}
	if config.Backoff <= 0 {
		config.Backoff = DefaultRetryConfig().Backoff
	}
	if log == nil {
		log = zap.NewNop()
	}

	var limiter *rate.Limiter
	if config.RequestsPerMinute > 0 {
		rps := float64(config.RequestsPerMinute) / 60.0
		burst := config.RequestsPerMinute / 4
		if burst < 1 {
			burst = 1
		}
		if burst > 5 {
			burst = 5
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return &Retrier{
		inner:   inner,
		config:  config,
		limiter: limiter,
		log:     log,
	}
}

// Translate attempts the translation up to Attempts times, pausing
// Backoff between tries. The pause respects context cancellation.
func (r *Retrier) Translate(ctx context.Context, text string, source, target model.Language) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.config.Attempts; attempt++ {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		out, err := r.inner.Translate(ctx, text, source, target)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = ErrEmptyResult
		}
		lastErr = err

		r.log.Warn("translation attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", r.config.Attempts),
			zap.Error(err))

		if attempt < r.config.Attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(r.config.Backoff):
			}
		}
	}

	return "", lastErr
}
