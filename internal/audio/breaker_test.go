package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerProvider_OpensAfterConsecutiveFailures(t *testing.T) {
	mock := &mockProvider{name: "openai", generateErr: errors.New("503")}
	breaker := NewBreakerProvider(mock)

	for i := 0; i < breakerFailures; i++ {
		err := breaker.GenerateAudio(context.Background(), "alfa", "out.mp3")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}

	err := breaker.GenerateAudio(context.Background(), "alfa", "out.mp3")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Contains(t, err.Error(), "openai")
	assert.Equal(t, breakerFailures, mock.generateCalls)

	assert.ErrorIs(t, breaker.IsAvailable(), ErrCircuitOpen)
}

func TestBreakerProvider_SuccessResetsFailures(t *testing.T) {
	mock := &mockProvider{name: "gemini", generateErr: errors.New("boom")}
	breaker := NewBreakerProvider(mock)

	for i := 0; i < breakerFailures-1; i++ {
		require.Error(t, breaker.GenerateAudio(context.Background(), "alfa", "out.wav"))
	}

	mock.generateErr = nil
	require.NoError(t, breaker.GenerateAudio(context.Background(), "alfa", "out.wav"))

	mock.generateErr = errors.New("boom")
	for i := 0; i < breakerFailures-1; i++ {
		err := breaker.GenerateAudio(context.Background(), "alfa", "out.wav")
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}
	assert.NoError(t, breaker.IsAvailable())
}

func TestBreakerProvider_CancellationDoesNotTrip(t *testing.T) {
	mock := &mockProvider{name: "openai", generateErr: context.Canceled}
	breaker := NewBreakerProvider(mock)

	for i := 0; i < breakerFailures+2; i++ {
		err := breaker.GenerateAudio(context.Background(), "alfa", "out.mp3")
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, breakerFailures+2, mock.generateCalls)
}

func TestBreakerProvider_Name(t *testing.T) {
	breaker := NewBreakerProvider(&mockProvider{name: "gemini"})
	assert.Equal(t, "gemini", breaker.Name())
	assert.NoError(t, breaker.IsAvailable())
}
