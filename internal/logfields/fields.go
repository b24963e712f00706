/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAddress       = "address"
	FieldBitIndex      = "bitIndex"
	FieldCapacity      = "capacity"
	FieldDefinitionID  = "definitionID"
	FieldEvent         = "event"
	FieldFormat        = "format"
	FieldIssuerDID     = "issuerDID"
	FieldSequence      = "sequence"
	FieldShardID       = "shardID"
	FieldSinkURI       = "sinkURI"
	FieldSleep         = "sleep"
	FieldSlotCount     = "slotCount"
	FieldStatusPurpose = "statusPurpose"
	FieldStatusValue   = "statusValue"
	FieldUserLogLevel  = "userLogLevel"
)

// WithAddress sets the Address field.
func WithAddress(address string) zap.Field {
	return zap.String(FieldAddress, address)
}

// WithBitIndex sets the BitIndex field.
func WithBitIndex(bitIndex int) zap.Field {
	return zap.Int(FieldBitIndex, bitIndex)
}

// WithCapacity sets the Capacity field.
func WithCapacity(capacity int) zap.Field {
	return zap.Int(FieldCapacity, capacity)
}

// WithDefinitionID sets the DefinitionID field.
func WithDefinitionID(definitionID string) zap.Field {
	return zap.String(FieldDefinitionID, definitionID)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithFormat sets the Format field.
func WithFormat(format string) zap.Field {
	return zap.String(FieldFormat, format)
}

// WithIssuerDID sets the IssuerDID field.
func WithIssuerDID(issuerDID string) zap.Field {
	return zap.String(FieldIssuerDID, issuerDID)
}

// WithSequence sets the Sequence field.
func WithSequence(sequence int) zap.Field {
	return zap.Int(FieldSequence, sequence)
}

// WithShardID sets the ShardID field.
func WithShardID(shardID string) zap.Field {
	return zap.String(FieldShardID, shardID)
}

// WithSinkURI sets the SinkURI field.
func WithSinkURI(sinkURI string) zap.Field {
	return zap.String(FieldSinkURI, sinkURI)
}

// WithSleep sets the Sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithSlotCount sets the SlotCount field.
func WithSlotCount(slotCount int) zap.Field {
	return zap.Int(FieldSlotCount, slotCount)
}

// WithStatusPurpose sets the StatusPurpose field.
func WithStatusPurpose(statusPurpose string) zap.Field {
	return zap.String(FieldStatusPurpose, statusPurpose)
}

// WithStatusValue sets the StatusValue field.
func WithStatusValue(statusValue int) zap.Field {
	return zap.Int(FieldStatusValue, statusValue)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
