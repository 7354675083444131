package queue

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/customerdesk/internal/model"
)

func TestPublishWithoutSubscribers(t *testing.T) {
	q := NewInMemoryQueue()
	err := q.Publish("customer_events", 1)
	assert.EqualError(t, err, "no subscribers for topic customer_events")
}

func TestPublishDeliversToEverySubscriber(t *testing.T) {
	q := NewInMemoryQueue()
	var calls int32
	for i := 0; i < 2; i++ {
		require.NoError(t, q.Subscribe("t", func(payload any) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}))
	}

	require.NoError(t, q.Publish("t", "hello"))
	q.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessJobRetries(t *testing.T) {
	q := NewInMemoryQueue()
	q.MaxRetries = 2
	q.Backoff = time.Millisecond

	var attempts int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("boom")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestProcessJobGivesUp(t *testing.T) {
	q := NewInMemoryQueue()
	q.MaxRetries = 1
	q.Backoff = time.Millisecond

	var attempts int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestCustomerEventSubscriber(t *testing.T) {
	q := NewInMemoryQueue()
	require.NoError(t, StartCustomerEventSubscriber(q, "customer_events"))

	assert.NoError(t, q.Publish("customer_events", model.NewCustomerEvent(model.CustomerCreated, 4)))
	assert.NoError(t, q.Publish("customer_events", "not an event"))
	q.Wait()
}
