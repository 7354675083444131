package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/customerdesk/internal/model"
)

// MockAcknowledger records what the worker did with a delivery
type MockAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	m.acked++
	return nil
}

func (m *MockAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	m.nacked++
	m.requeue = requeue
	return nil
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func TestDecodeEvent(t *testing.T) {
	want := model.NewCustomerEvent(model.CustomerDeleted, 3)
	body, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, model.CustomerDeleted, got.Type)
	assert.Equal(t, 3, got.CustomerID)
	assert.True(t, want.OccurredAt.Equal(got.OccurredAt))

	_, err = decodeEvent([]byte("{not json"))
	assert.Error(t, err)
}

func TestSettle(t *testing.T) {
	ok := &MockAcknowledger{}
	settle(amqp.Delivery{Acknowledger: ok}, nil)
	assert.Equal(t, 1, ok.acked)

	first := &MockAcknowledger{}
	settle(amqp.Delivery{Acknowledger: first}, errors.New("sink down"))
	assert.Equal(t, 1, first.nacked)
	assert.True(t, first.requeue)

	again := &MockAcknowledger{}
	settle(amqp.Delivery{Acknowledger: again, Redelivered: true}, errors.New("sink down"))
	assert.Equal(t, 1, again.acked)
	assert.Zero(t, again.nacked)
}

func TestDeliveries(t *testing.T) {
	p := &deliveries{byEvent: map[string]amqp.Delivery{}}
	id := uuid.NewString()
	p.put(id, amqp.Delivery{DeliveryTag: 7})

	d, ok := p.take(id)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), d.DeliveryTag)

	_, ok = p.take(id)
	assert.False(t, ok)
}
