package service_test

import (
	"bytes"
	"errors"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/service"
)

type memorySink struct {
	mu     sync.Mutex
	events []model.CustomerEvent
	err    error
}

func (s *memorySink) Record(e model.CustomerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func TestWorkerDrainsChannel(t *testing.T) {
	sink := &memorySink{}
	events := make(chan model.CustomerEvent, 2)
	events <- model.NewCustomerEvent(model.CustomerCreated, 1)
	events <- model.NewCustomerEvent(model.CustomerDeleted, 1)
	close(events)

	var failures int
	w := service.NewWorker(sink, events)
	w.OnDone = func(_ model.CustomerEvent, err error) {
		if err != nil {
			failures++
		}
	}
	w.Start()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, model.CustomerDeleted, sink.events[1].Type)
	assert.Zero(t, failures)
}

func TestWorkerReportsSinkErrors(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	events := make(chan model.CustomerEvent, 1)
	events <- model.NewCustomerEvent(model.CustomerCreated, 9)
	close(events)

	var got error
	w := service.NewWorker(sink, events)
	w.OnDone = func(_ model.CustomerEvent, err error) { got = err }
	w.Start()

	assert.EqualError(t, got, "disk full")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := service.LogSink{Logger: log.New(&buf, "", 0)}

	e := model.NewCustomerEvent(model.CustomerCreated, 12)
	assert.NoError(t, sink.Record(e))
	assert.Contains(t, buf.String(), "audit customer.created customer_id=12 event_id="+e.ID.String())
}
