/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"fmt"
	"time"

	"github.com/trustbloc/status-list-svc/pkg/doc/statustype"
)

// DefaultShardCapacity is the number of bits in a shard when the definition
// does not set its own capacity.
const DefaultShardCapacity = 131072

// Definition is the configuration for one status purpose. All shards of a
// definition are created from it; updating a definition never alters the
// shards that already exist.
type Definition struct {
	ID            string            `json:"id"`
	StatusPurpose string            `json:"statusPurpose"`
	StatusSize    int               `json:"statusSize"`
	// StatusMessages maps a "0x"-prefixed bit pattern to its label. Required
	// when StatusSize > 1 or the purpose is "message".
	StatusMessages map[string]string `json:"statusMessages,omitempty"`
	// ShardCapacity is the size of each shard in bits.
	ShardCapacity int `json:"shardCapacity"`
	// ActiveShardSequence is the sequence of the shard currently accepting
	// allocations. Nil until the first allocation. Only ever increases.
	ActiveShardSequence *int      `json:"activeShardSequence,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Shard is one physical bit array instance. Capacity and SlotBitWidth are
// copied from the definition at creation time and never change.
type Shard struct {
	ID           string `json:"id"`
	DefinitionID string `json:"definitionId"`
	// Sequence is 0-based and unique within the definition.
	Sequence     int `json:"sequence"`
	Capacity     int `json:"capacity"`
	SlotBitWidth int `json:"slotBitWidth"`
	// AllocationCursor is the bit offset of the next hand-out. It advances by
	// SlotBitWidth per allocation and never rewinds. Cursor == Capacity means
	// the shard is exhausted.
	AllocationCursor int       `json:"allocationCursor"`
	CreatedAt        time.Time `json:"createdAt"`
}

// IsFull reports whether the shard has no slots left to hand out.
func (s *Shard) IsFull() bool {
	return s.AllocationCursor >= s.Capacity
}

// SlotCount returns the number of slots the shard holds.
func (s *Shard) SlotCount() int {
	return s.Capacity / s.SlotBitWidth
}

// Slot binds one bit position within a shard.
type Slot struct {
	// ID is "<shardID>-<bitIndex>".
	ID      string `json:"id"`
	ShardID string `json:"shardId"`
	// BitIndex is the slot's offset in the shard bit array. It is a multiple
	// of the shard's SlotBitWidth.
	BitIndex int `json:"bitIndex"`
	// AllocationRank is the slot's position in the shard's randomized
	// hand-out order. Set once at shard creation, immutable. Across a shard
	// the ranks form a permutation of {0 .. SlotCount-1}.
	AllocationRank int  `json:"allocationRank"`
	StatusValue    int  `json:"statusValue"`
	Assigned       bool `json:"assigned"`
}

// SlotID builds the slot identifier from its shard and bit index.
func SlotID(shardID string, bitIndex int) string {
	return fmt.Sprintf("%s-%d", shardID, bitIndex)
}

// Entry is the outcome of one allocation: a live binding of a credential to
// a bit position.
type Entry struct {
	ShardID     string `json:"shardId"`
	Sequence    int    `json:"sequence"`
	BitIndex    int    `json:"bitIndex"`
	StatusValue int    `json:"statusValue"`
}

// ShardPublication is the publication outcome for a single shard.
type ShardPublication struct {
	ShardID  string `json:"shardId"`
	Sequence int    `json:"sequence"`
	// Payload is the unsigned token payload built for the shard.
	Payload interface{} `json:"payload,omitempty"`
	// Token is the signed compact JWS.
	Token string `json:"token,omitempty"`
	// ArtifactURI is set when the signed token was written to a sink.
	ArtifactURI string `json:"artifactUri,omitempty"`
	// Error carries the shard's signing or sink failure. A failed shard does
	// not abort its siblings.
	Error string `json:"error,omitempty"`
}

// PublicationResult is the outcome of publishing every shard of a definition.
type PublicationResult struct {
	DefinitionID string              `json:"definitionId"`
	IssuerDID    string              `json:"issuerDid"`
	Format       statustype.Format   `json:"format"`
	Shards       []*ShardPublication `json:"shards"`
}
