/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shardmanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/status-list-svc/internal/logfields"
	"github.com/trustbloc/status-list-svc/pkg/event/spi"
	"github.com/trustbloc/status-list-svc/pkg/locker"
	"github.com/trustbloc/status-list-svc/pkg/observability/metrics/noop"
	"github.com/trustbloc/status-list-svc/pkg/restapi/resterr"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

var logger = log.New("statuslist-shard-manager")

const (
	eventSource = "source://status-svc/shard-manager"

	allocationLockPrefix = "statuslist:allocate:"

	txnMaxRetries    = 2
	txnRetryInterval = 100 * time.Millisecond
)

type definitionStore interface {
	Get(ctx context.Context, definitionID string) (*statuslist.Definition, error)
	Update(ctx context.Context, definition *statuslist.Definition) error
}

type shardStore interface {
	Create(ctx context.Context, shard *statuslist.Shard) error
	Get(ctx context.Context, shardID string) (*statuslist.Shard, error)
	GetBySequence(ctx context.Context, definitionID string, sequence int) (*statuslist.Shard, error)
	Find(ctx context.Context, definitionID string) ([]*statuslist.Shard, error)
	Update(ctx context.Context, shard *statuslist.Shard) error
	Delete(ctx context.Context, shardID string) error
}

type slotStore interface {
	CreateMany(ctx context.Context, slots []*statuslist.Slot) error
	Get(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error)
	GetByRank(ctx context.Context, shardID string, rank int) (*statuslist.Slot, error)
	Find(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error)
	Update(ctx context.Context, slot *statuslist.Slot) error
	DeleteByShard(ctx context.Context, shardID string) error
}

type transactionRunner interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	AllocateEntryTime(value time.Duration)
}

// EntryEventPayload is the data carried by slot mutation events.
type EntryEventPayload struct {
	ShardID     string `json:"shardId"`
	BitIndex    int    `json:"bitIndex"`
	StatusValue int    `json:"statusValue"`
}

// ShardEventPayload is the data carried by shard lifecycle events.
type ShardEventPayload struct {
	ShardID      string `json:"shardId"`
	DefinitionID string `json:"definitionId"`
	Sequence     int    `json:"sequence"`
}

type Config struct {
	DefinitionStore definitionStore
	ShardStore      shardStore
	SlotStore       slotStore
	TxnRunner       transactionRunner
	Locker          locker.Locker
	EventPublisher  eventPublisher
	EventTopic      string
	Metrics         metricsProvider
}

// Manager owns the shard and slot lifecycle. It is the only writer of
// AllocationCursor and ActiveShardSequence.
type Manager struct {
	definitionStore definitionStore
	shardStore      shardStore
	slotStore       slotStore
	txnRunner       transactionRunner
	locker          locker.Locker
	eventPublisher  eventPublisher
	eventTopic      string
	metrics         metricsProvider
}

// New returns a new shard manager.
func New(config *Config) (*Manager, error) {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Manager{
		definitionStore: config.DefinitionStore,
		shardStore:      config.ShardStore,
		slotStore:       config.SlotStore,
		txnRunner:       config.TxnRunner,
		locker:          config.Locker,
		eventPublisher:  config.EventPublisher,
		eventTopic:      config.EventTopic,
		metrics:         m,
	}, nil
}

// Allocate hands out the next free slot of the definition's active shard,
// creating the first or the next shard when needed. The whole read-modify-write
// sequence runs in one storage transaction under a per-definition lock, so two
// concurrent calls never observe the same pre-mutation cursor.
func (m *Manager) Allocate(ctx context.Context, definitionID string) (*statuslist.Entry, error) {
	logger.Debugc(ctx, "Shard manager - Allocate", logfields.WithDefinitionID(definitionID))

	startTime := time.Now()

	defer func() {
		m.metrics.AllocateEntryTime(time.Since(startTime))
	}()

	mutex := m.locker.NewMutex(allocationLockPrefix + definitionID)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, resterr.NewSystemError(resterr.ShardManagerComponent, "allocate",
			fmt.Errorf("failed to acquire allocation lock: %w", err))
	}

	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			logger.Warnc(ctx, "Failed to release allocation lock", log.WithError(err),
				logfields.WithDefinitionID(definitionID))
		}
	}()

	var entry *statuslist.Entry

	err := m.runInTxn(ctx, func(txnCtx context.Context) error {
		var txnErr error

		// reread everything on retry: an aborted attempt must not leak a stale cursor
		entry, txnErr = m.allocate(txnCtx, definitionID)

		return txnErr
	})
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "Shard manager - Allocate succeeded", logfields.WithShardID(entry.ShardID),
		logfields.WithSequence(entry.Sequence), logfields.WithBitIndex(entry.BitIndex))

	return entry, nil
}

func (m *Manager) allocate(ctx context.Context, definitionID string) (*statuslist.Entry, error) {
	definition, err := m.definitionStore.Get(ctx, definitionID)
	if err != nil {
		if errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DataNotFound,
				fmt.Errorf("definition %s not found", definitionID))
		}

		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to get definition: %w", err))
	}

	shard, err := m.workingShard(ctx, definition)
	if err != nil {
		return nil, err
	}

	rank := shard.AllocationCursor / shard.SlotBitWidth

	slot, err := m.slotStore.GetByRank(ctx, shard.ID, rank)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError,
			fmt.Errorf("failed to get slot with rank %d: %w", rank, err))
	}

	slot.Assigned = true

	if err = m.slotStore.Update(ctx, slot); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to assign slot: %w", err))
	}

	shard.AllocationCursor += shard.SlotBitWidth

	if err = m.shardStore.Update(ctx, shard); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError,
			fmt.Errorf("failed to advance allocation cursor: %w", err))
	}

	return &statuslist.Entry{
		ShardID:     shard.ID,
		Sequence:    shard.Sequence,
		BitIndex:    slot.BitIndex,
		StatusValue: slot.StatusValue,
	}, nil
}

// workingShard returns the definition's active shard, rolling over to a fresh
// one when there is no shard yet or the active one is exhausted.
func (m *Manager) workingShard(ctx context.Context, definition *statuslist.Definition) (*statuslist.Shard, error) {
	if definition.ActiveShardSequence != nil {
		shard, err := m.shardStore.GetBySequence(ctx, definition.ID, *definition.ActiveShardSequence)
		if err != nil && !errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.StorageError,
				fmt.Errorf("failed to get active shard: %w", err))
		}

		if err == nil && !shard.IsFull() {
			return shard, nil
		}
	}

	return m.createShard(ctx, definition)
}

func (m *Manager) createShard(ctx context.Context, definition *statuslist.Definition) (*statuslist.Shard, error) {
	nextSequence := 0
	if definition.ActiveShardSequence != nil {
		nextSequence = *definition.ActiveShardSequence + 1
	}

	definition.ActiveShardSequence = &nextSequence
	definition.UpdatedAt = time.Now().UTC()

	if err := m.definitionStore.Update(ctx, definition); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError,
			fmt.Errorf("failed to advance active shard sequence: %w", err))
	}

	shard := &statuslist.Shard{
		ID:           uuid.NewString(),
		DefinitionID: definition.ID,
		Sequence:     nextSequence,
		Capacity:     definition.ShardCapacity,
		SlotBitWidth: definition.StatusSize,
		CreatedAt:    time.Now().UTC(),
	}

	if err := m.shardStore.Create(ctx, shard); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to create shard: %w", err))
	}

	if err := m.slotStore.CreateMany(ctx, newSlots(shard)); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to create slots: %w", err))
	}

	logger.Debugc(ctx, "created new status list shard", logfields.WithDefinitionID(definition.ID),
		logfields.WithSequence(shard.Sequence), logfields.WithSlotCount(shard.SlotCount()))

	return shard, nil
}

// newSlots builds the full slot population of a fresh shard. Hand-out order is
// a uniform random permutation of the bit indices, fixed for the shard's
// lifetime, so a credential's bit position reveals nothing about when it was
// issued.
func newSlots(shard *statuslist.Shard) []*statuslist.Slot {
	count := shard.SlotCount()

	bitIndexes := make([]int, count)
	for i := range bitIndexes {
		bitIndexes[i] = i * shard.SlotBitWidth
	}

	rand.Shuffle(count, func(i, j int) { //nolint:gosec
		bitIndexes[i], bitIndexes[j] = bitIndexes[j], bitIndexes[i]
	})

	slots := make([]*statuslist.Slot, count)

	for rank, bitIndex := range bitIndexes {
		slots[rank] = &statuslist.Slot{
			ID:             statuslist.SlotID(shard.ID, bitIndex),
			ShardID:        shard.ID,
			BitIndex:       bitIndex,
			AllocationRank: rank,
		}
	}

	return slots
}

// Recycle resets the slot to unassigned with a zero status. The slot keeps its
// allocation rank and the cursor has already passed it, so it is never handed
// out again.
func (m *Manager) Recycle(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error) {
	slot, err := m.GetSlot(ctx, shardID, bitIndex)
	if err != nil {
		return nil, err
	}

	slot.StatusValue = 0
	slot.Assigned = false

	if err = m.slotStore.Update(ctx, slot); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to recycle slot: %w", err))
	}

	m.sendEntryEvent(ctx, spi.EntryRecycled, slot)

	return slot, nil
}

// UpdateStatus overwrites the slot's status value. The write is permitted
// regardless of the slot's assignment state and never moves the cursor.
func (m *Manager) UpdateStatus(ctx context.Context, shardID string, bitIndex, statusValue int) (*statuslist.Slot, error) {
	shard, err := m.GetShard(ctx, shardID)
	if err != nil {
		return nil, err
	}

	if statusValue < 0 || statusValue >= 1<<uint(shard.SlotBitWidth) {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "status",
			fmt.Errorf("status value %d does not fit in %d bit(s)", statusValue, shard.SlotBitWidth))
	}

	slot, err := m.GetSlot(ctx, shardID, bitIndex)
	if err != nil {
		return nil, err
	}

	slot.StatusValue = statusValue

	if err = m.slotStore.Update(ctx, slot); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to update slot status: %w", err))
	}

	m.sendEntryEvent(ctx, spi.EntryStatusUpdated, slot)

	return slot, nil
}

// DeleteShard removes the shard and all its slots in one transaction.
func (m *Manager) DeleteShard(ctx context.Context, shardID string) error {
	shard, err := m.GetShard(ctx, shardID)
	if err != nil {
		return err
	}

	err = m.runInTxn(ctx, func(txnCtx context.Context) error {
		if err := m.slotStore.DeleteByShard(txnCtx, shardID); err != nil {
			return fmt.Errorf("failed to delete slots: %w", err)
		}

		if err := m.shardStore.Delete(txnCtx, shardID); err != nil {
			return fmt.Errorf("failed to delete shard: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.sendShardEvent(ctx, spi.ShardDeleted, shard)

	return nil
}

// GetShard returns the shard by ID.
func (m *Manager) GetShard(ctx context.Context, shardID string) (*statuslist.Shard, error) {
	shard, err := m.shardStore.Get(ctx, shardID)
	if err != nil {
		if errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DataNotFound, fmt.Errorf("shard %s not found", shardID))
		}

		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to get shard: %w", err))
	}

	return shard, nil
}

// GetShards returns all shards of the definition ordered by sequence.
func (m *Manager) GetShards(ctx context.Context, definitionID string) ([]*statuslist.Shard, error) {
	shards, err := m.shardStore.Find(ctx, definitionID)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to find shards: %w", err))
	}

	return shards, nil
}

// GetSlot returns the slot at the given bit index.
func (m *Manager) GetSlot(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error) {
	slot, err := m.slotStore.Get(ctx, shardID, bitIndex)
	if err != nil {
		if errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DataNotFound,
				fmt.Errorf("slot %s not found", statuslist.SlotID(shardID, bitIndex)))
		}

		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to get slot: %w", err))
	}

	return slot, nil
}

// GetSlots returns the shard's slots ordered by bit index, optionally filtered
// by assignment state.
func (m *Manager) GetSlots(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error) {
	slots, err := m.slotStore.Find(ctx, shardID, assigned)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to find slots: %w", err))
	}

	return slots, nil
}

// runInTxn runs fn in a storage transaction, retrying transient failures.
// Domain errors are returned as-is and never retried.
func (m *Manager) runInTxn(ctx context.Context, fn func(ctx context.Context) error) error {
	operation := func() error {
		err := m.txnRunner.Transaction(ctx, fn)
		if err != nil {
			var customErr *resterr.CustomError

			if errors.As(err, &customErr) {
				return backoff.Permanent(customErr)
			}

			return err
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(txnRetryInterval), txnMaxRetries), ctx))
	if err != nil {
		var customErr *resterr.CustomError

		if errors.As(err, &customErr) {
			return customErr
		}

		return resterr.NewCustomError(resterr.StorageError, err)
	}

	return nil
}

func (m *Manager) sendEntryEvent(ctx context.Context, eventType spi.EventType, slot *statuslist.Slot) {
	payload, err := json.Marshal(&EntryEventPayload{
		ShardID:     slot.ShardID,
		BitIndex:    slot.BitIndex,
		StatusValue: slot.StatusValue,
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal entry event payload. Ignoring..", log.WithError(err))

		return
	}

	if err = m.eventPublisher.Publish(ctx, m.eventTopic,
		spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)); err != nil {
		logger.Warnc(ctx, "Failed to publish entry event. Ignoring..", log.WithError(err),
			logfields.WithShardID(slot.ShardID), logfields.WithBitIndex(slot.BitIndex))
	}
}

func (m *Manager) sendShardEvent(ctx context.Context, eventType spi.EventType, shard *statuslist.Shard) {
	payload, err := json.Marshal(&ShardEventPayload{
		ShardID:      shard.ID,
		DefinitionID: shard.DefinitionID,
		Sequence:     shard.Sequence,
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal shard event payload. Ignoring..", log.WithError(err))

		return
	}

	if err = m.eventPublisher.Publish(ctx, m.eventTopic,
		spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)); err != nil {
		logger.Warnc(ctx, "Failed to publish shard event. Ignoring..", log.WithError(err),
			logfields.WithShardID(shard.ID))
	}
}
