/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shardmanager

import (
	"context"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

type ServiceInterface interface {
	Allocate(ctx context.Context, definitionID string) (*statuslist.Entry, error)
	Recycle(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error)
	UpdateStatus(ctx context.Context, shardID string, bitIndex, statusValue int) (*statuslist.Slot, error)
	DeleteShard(ctx context.Context, shardID string) error
	GetShard(ctx context.Context, shardID string) (*statuslist.Shard, error)
	GetShards(ctx context.Context, definitionID string) ([]*statuslist.Shard, error)
	GetSlot(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error)
	GetSlots(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error)
}
