package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/streadway/amqp"

	"github.com/unclebandit/customerdesk/internal/config"
	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/queue"
	"github.com/unclebandit/customerdesk/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL must be set for the worker")
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := queue.DeclareQueue(ch, cfg.EventsQueue)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	events := make(chan model.CustomerEvent)
	pending := &deliveries{byEvent: map[string]amqp.Delivery{}}
	done := make(chan struct{})

	worker := service.NewWorker(service.LogSink{}, events)
	worker.OnDone = func(event model.CustomerEvent, err error) {
		if d, ok := pending.take(event.ID.String()); ok {
			settle(d, err)
		}
	}
	go func() {
		worker.Start()
		close(done)
	}()

	go func() {
		defer close(events)
		for d := range msgs {
			event, err := decodeEvent(d.Body)
			if err != nil {
				log.Println("Invalid event:", err)
				d.Ack(false)
				continue
			}
			pending.put(event.ID.String(), d)
			events <- event
		}
	}()

	log.Println("Worker running, waiting for customer events...")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-done:
		log.Println("⚠️ delivery channel closed")
	}
}

func decodeEvent(body []byte) (model.CustomerEvent, error) {
	var event model.CustomerEvent
	err := json.Unmarshal(body, &event)
	return event, err
}

// deliveries tracks unacknowledged deliveries by event id.
type deliveries struct {
	mu      sync.Mutex
	byEvent map[string]amqp.Delivery
}

func (p *deliveries) put(id string, d amqp.Delivery) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byEvent[id] = d
}

func (p *deliveries) take(id string) (amqp.Delivery, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.byEvent[id]
	delete(p.byEvent, id)
	return d, ok
}

// settle acks handled deliveries. A failed delivery is requeued once and dropped
// if it fails again after redelivery.
func settle(d amqp.Delivery, err error) {
	if err == nil || d.Redelivered {
		d.Ack(false)
		return
	}
	d.Nack(false, true)
}
