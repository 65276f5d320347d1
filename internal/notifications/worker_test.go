package notifications_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/notifications"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	deliveries chan notifications.Delivery
}

func (s *stubSource) Fetch(ctx context.Context) (notifications.Delivery, error) {
	select {
	case delivery := <-s.deliveries:
		return delivery, nil
	case <-ctx.Done():
		return notifications.Delivery{}, ctx.Err()
	}
}

func (s *stubSource) Close() error { return nil }

func TestWorker_Run_DispatchesAndAcks(t *testing.T) {
	sender := &fakeSender{}
	registry := notifications.NewSenderRegistry()
	registry.Register("fake", sender)
	dispatcher := notifications.NewDispatcher(registry, discardLogger())

	acked := make(chan string, 2)
	source := &stubSource{deliveries: make(chan notifications.Delivery, 2)}
	for _, id := range []string{"job-1", "job-2"} {
		job := testJob("+111")
		job.ID = id
		source.deliveries <- notifications.Delivery{
			Job: job,
			Ack: func(_ context.Context) error {
				acked <- job.ID
				return nil
			},
		}
	}

	ctx, cancel := context.WithCancel(t.Context())
	worker := notifications.NewWorker(source, dispatcher, 2, discardLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := worker.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	}()

	got := make(map[string]bool)
	for range 2 {
		select {
		case id := <-acked:
			got[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for job acknowledgement")
		}
	}
	require.True(t, got["job-1"])
	require.True(t, got["job-2"])

	cancel()
	wg.Wait()
}

func TestWorker_Run_AcksJobWithUnknownSender(t *testing.T) {
	// An unknown sender key never resolves on redelivery, so the worker
	// must acknowledge instead of looping on the same message.
	dispatcher := notifications.NewDispatcher(notifications.NewSenderRegistry(), discardLogger())

	acked := make(chan struct{})
	source := &stubSource{deliveries: make(chan notifications.Delivery, 1)}
	source.deliveries <- notifications.Delivery{
		Job: testJob("+111"),
		Ack: func(_ context.Context) error {
			close(acked)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	worker := notifications.NewWorker(source, dispatcher, 1, discardLogger())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for acknowledgement")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
