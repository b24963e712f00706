/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import "context"

type DefinitionStore interface {
	// Create persists a new definition.
	Create(ctx context.Context, definition *Definition) error
	// Get returns the definition by ID, or ErrDataNotFound.
	Get(ctx context.Context, definitionID string) (*Definition, error)
	// Find returns definitions, optionally filtered by status purpose.
	Find(ctx context.Context, statusPurpose string) ([]*Definition, error)
	// Update replaces the stored definition.
	Update(ctx context.Context, definition *Definition) error
	// Delete removes the definition by ID.
	Delete(ctx context.Context, definitionID string) error
}

type ShardStore interface {
	// Create persists a new shard.
	Create(ctx context.Context, shard *Shard) error
	// Get returns the shard by ID, or ErrDataNotFound.
	Get(ctx context.Context, shardID string) (*Shard, error)
	// GetBySequence returns the definition's shard with the given sequence,
	// or ErrDataNotFound.
	GetBySequence(ctx context.Context, definitionID string, sequence int) (*Shard, error)
	// Find returns all shards of the definition ordered by sequence.
	Find(ctx context.Context, definitionID string) ([]*Shard, error)
	// Update replaces the stored shard.
	Update(ctx context.Context, shard *Shard) error
	// Delete removes the shard by ID.
	Delete(ctx context.Context, shardID string) error
	// Count returns the number of shards owned by the definition.
	Count(ctx context.Context, definitionID string) (int64, error)
}

type SlotStore interface {
	// CreateMany persists the full slot population of a fresh shard.
	CreateMany(ctx context.Context, slots []*Slot) error
	// Get returns the slot at the given bit index, or ErrDataNotFound.
	Get(ctx context.Context, shardID string, bitIndex int) (*Slot, error)
	// GetByRank returns the slot with the given allocation rank, or
	// ErrDataNotFound.
	GetByRank(ctx context.Context, shardID string, rank int) (*Slot, error)
	// Find returns the shard's slots ordered by bit index, optionally
	// filtered by assignment state.
	Find(ctx context.Context, shardID string, assigned *bool) ([]*Slot, error)
	// Update replaces the stored slot.
	Update(ctx context.Context, slot *Slot) error
	// DeleteByShard removes every slot owned by the shard.
	DeleteByShard(ctx context.Context, shardID string) error
}
