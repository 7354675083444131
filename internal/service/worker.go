package service

import (
	"log"

	"github.com/unclebandit/customerdesk/internal/model"
)

// EventSink records a customer event, e.g. into an audit log.
type EventSink interface {
	Record(event model.CustomerEvent) error
}

// Worker drains customer events from a channel into a sink.
type Worker struct {
	Sink      EventSink
	EventChan <-chan model.CustomerEvent
	OnDone    func(event model.CustomerEvent, err error)
}

// Constructor
func NewWorker(sink EventSink, eventChan <-chan model.CustomerEvent) *Worker {
	return &Worker{
		Sink:      sink,
		EventChan: eventChan,
	}
}

// Start processes events until the channel is closed.
func (w *Worker) Start() {
	for event := range w.EventChan {
		err := w.Sink.Record(event)
		if err != nil {
			log.Println("Failed to record event", event.ID, ":", err)
		}
		if w.OnDone != nil {
			w.OnDone(event, err)
		}
	}
}

// LogSink writes one audit line per event.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Record(event model.CustomerEvent) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("audit %s customer_id=%d event_id=%s at=%s",
		event.Type, event.CustomerID, event.ID, event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
