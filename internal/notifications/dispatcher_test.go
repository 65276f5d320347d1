package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/internal/core/ports"
	"storefront/internal/notifications"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSender fails exactly the recipients listed in failing and records
// every attempt.
type fakeSender struct {
	mu       sync.Mutex
	failing  map[string]error
	attempts []string
}

func (s *fakeSender) Send(_ context.Context, recipient, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, recipient)
	if err, ok := s.failing[recipient]; ok {
		return err
	}
	return nil
}

func testJob(recipients ...string) ports.NotificationJob {
	return ports.NotificationJob{
		ID:         "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		OrderID:    "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		Recipients: recipients,
		Message:    "Thank you for purchasing order 6ba7b811-9dad-11d1-80b4-00c04fd430c8!",
		SenderKey:  "fake",
	}
}

func TestDispatcher_Dispatch_AllSucceed(t *testing.T) {
	sender := &fakeSender{}
	registry := notifications.NewSenderRegistry()
	registry.Register("fake", sender)

	dispatcher := notifications.NewDispatcher(registry, discardLogger())
	result, err := dispatcher.Dispatch(t.Context(), testJob("+111", "+222"))

	require.NoError(t, err)
	require.Equal(t, []string{"+111", "+222"}, result.Successes)
	require.Empty(t, result.Failures)
}

func TestDispatcher_Dispatch_PartialFailurePartitionsRecipients(t *testing.T) {
	sendErr := errors.New("provider rejected number")
	sender := &fakeSender{failing: map[string]error{"+111": sendErr}}
	registry := notifications.NewSenderRegistry()
	registry.Register("fake", sender)

	dispatcher := notifications.NewDispatcher(registry, discardLogger())
	result, err := dispatcher.Dispatch(t.Context(), testJob("+111", "+222"))

	require.NoError(t, err, "a recipient failure must not fail the job")
	require.Equal(t, []string{"+222"}, result.Successes)
	require.Len(t, result.Failures, 1)
	require.Equal(t, "+111", result.Failures[0].Recipient)
	require.ErrorIs(t, result.Failures[0].Err, sendErr)

	// Every recipient was attempted despite the first one failing.
	require.Equal(t, []string{"+111", "+222"}, sender.attempts)
}

func TestDispatcher_Dispatch_AllFail(t *testing.T) {
	sendErr := errors.New("provider down")
	sender := &fakeSender{failing: map[string]error{"+111": sendErr, "+222": sendErr}}
	registry := notifications.NewSenderRegistry()
	registry.Register("fake", sender)

	dispatcher := notifications.NewDispatcher(registry, discardLogger())
	result, err := dispatcher.Dispatch(t.Context(), testJob("+111", "+222"))

	require.NoError(t, err)
	require.Empty(t, result.Successes)
	require.Len(t, result.Failures, 2)
}

func TestDispatcher_Dispatch_UnknownSenderKey(t *testing.T) {
	registry := notifications.NewSenderRegistry()

	dispatcher := notifications.NewDispatcher(registry, discardLogger())
	_, err := dispatcher.Dispatch(t.Context(), testJob("+111"))

	require.ErrorIs(t, err, notifications.ErrUnsupportedSender)
}

// blockingSender never returns until its context does.
type blockingSender struct{}

func (blockingSender) Send(ctx context.Context, _, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestDispatcher_Dispatch_CancelledContextCountsAsRecipientFailure(t *testing.T) {
	registry := notifications.NewSenderRegistry()
	registry.Register("fake", blockingSender{})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	dispatcher := notifications.NewDispatcher(registry, discardLogger())
	result, err := dispatcher.Dispatch(ctx, testJob("+111"))

	require.NoError(t, err)
	require.Empty(t, result.Successes)
	require.Len(t, result.Failures, 1)
	require.ErrorIs(t, result.Failures[0].Err, context.Canceled)
}

func TestSenderRegistry_ResolveAndReplace(t *testing.T) {
	first := &fakeSender{}
	second := &fakeSender{}

	registry := notifications.NewSenderRegistry()
	registry.Register("sms", first)
	registry.Register("sms", second)

	resolved, err := registry.Resolve("sms")
	require.NoError(t, err)
	require.Same(t, second, resolved.(*fakeSender))
}

func TestLogSender_SendAlwaysSucceeds(t *testing.T) {
	sender := notifications.NewLogSender(discardLogger())
	require.NoError(t, sender.Send(t.Context(), "+79991234567", "hello"))
}
