package audio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/readablepassword/internal/logging"
)

// ErrCircuitOpen is returned while a failing provider is being skipped.
var ErrCircuitOpen = errors.New("speech provider circuit open")

const (
	breakerFailures = 3
	breakerCooldown = 30 * time.Second
)

// BreakerProvider stops calling a remote provider after repeated failures
// so one outage does not cost a timeout per input line.
type BreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps provider in a circuit breaker
func NewBreakerProvider(provider Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			// Cancellation is the user's doing, not the provider's.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger().Warn("speech provider circuit state changed",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &BreakerProvider{
		provider: provider,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// GenerateAudio calls the wrapped provider unless the circuit is open
func (b *BreakerProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.provider.GenerateAudio(ctx, text, outputFile)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s", ErrCircuitOpen, b.provider.Name())
	}
	return err
}

// Name returns the wrapped provider name
func (b *BreakerProvider) Name() string {
	return b.provider.Name()
}

// IsAvailable reports the wrapped provider's availability, or an error
// while the circuit is open.
func (b *BreakerProvider) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("%w: %s", ErrCircuitOpen, b.provider.Name())
	}
	return b.provider.IsAvailable()
}
