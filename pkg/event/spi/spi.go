/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// StatusListEventTopic status list topic name.
	StatusListEventTopic = "status-svc-statuslist"
)

// EventType event type.
type EventType string

const (
	// DefinitionCreated definition lifecycle event.
	DefinitionCreated = EventType("definition_created")
	// DefinitionUpdated definition lifecycle event.
	DefinitionUpdated = EventType("definition_updated")
	// DefinitionDeleted definition lifecycle event.
	DefinitionDeleted = EventType("definition_deleted")

	// EntryStatusUpdated slot status overwrite event.
	EntryStatusUpdated = EventType("entry_status_updated")
	// EntryRecycled slot recycle event.
	EntryRecycled = EventType("entry_recycled")

	// ShardDeleted bulk shard delete event.
	ShardDeleted = EventType("shard_deleted")

	// StatusListPublished publication event.
	StatusListPublished = EventType("statuslist_published")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time *time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`

	// Subject defines subject(optional).
	Subject string `json:"subject,omitempty"`

	// Tracing defines tracing(optional).
	Tracing string `json:"tracing,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
		Subject:         m.Subject,
		Tracing:         m.Tracing,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// all components publish json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	now := time.Now()

	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        &now,
	}
}

// Options contains publisher/subscriber options.
type Options struct {
	PoolSize      int
	DeliveryDelay time.Duration
}

// Option specifies a publisher/subscriber option.
type Option func(opts *Options)

// WithPool sets the pool size.
func WithPool(size int) Option {
	return func(opts *Options) {
		opts.PoolSize = size
	}
}

// WithDeliveryDelay sets the delivery delay.
// Note: Not all message brokers support this option.
func WithDeliveryDelay(delay time.Duration) Option {
	return func(opts *Options) {
		opts.DeliveryDelay = delay
	}
}
