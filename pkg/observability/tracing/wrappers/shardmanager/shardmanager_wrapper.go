/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package shardmanager . Service

//nolint:lll
package shardmanager

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/shardmanager"
)

type Service shardmanager.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Allocate(ctx context.Context, definitionID string) (*statuslist.Entry, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.Allocate")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", definitionID))

	entry, err := w.svc.Allocate(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (w *Wrapper) Recycle(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.Recycle")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))
	span.SetAttributes(attribute.Int("bit_index", bitIndex))

	slot, err := w.svc.Recycle(ctx, shardID, bitIndex)
	if err != nil {
		return nil, err
	}

	return slot, nil
}

func (w *Wrapper) UpdateStatus(ctx context.Context, shardID string, bitIndex, statusValue int) (*statuslist.Slot, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.UpdateStatus")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))
	span.SetAttributes(attribute.Int("bit_index", bitIndex))
	span.SetAttributes(attribute.Int("status_value", statusValue))

	slot, err := w.svc.UpdateStatus(ctx, shardID, bitIndex, statusValue)
	if err != nil {
		return nil, err
	}

	return slot, nil
}

func (w *Wrapper) DeleteShard(ctx context.Context, shardID string) error {
	ctx, span := w.tracer.Start(ctx, "shardmanager.DeleteShard")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))

	err := w.svc.DeleteShard(ctx, shardID)
	if err != nil {
		return err
	}

	return nil
}

func (w *Wrapper) GetShard(ctx context.Context, shardID string) (*statuslist.Shard, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.GetShard")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))

	shard, err := w.svc.GetShard(ctx, shardID)
	if err != nil {
		return nil, err
	}

	return shard, nil
}

func (w *Wrapper) GetShards(ctx context.Context, definitionID string) ([]*statuslist.Shard, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.GetShards")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", definitionID))

	shards, err := w.svc.GetShards(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	return shards, nil
}

func (w *Wrapper) GetSlot(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.GetSlot")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))
	span.SetAttributes(attribute.Int("bit_index", bitIndex))

	slot, err := w.svc.GetSlot(ctx, shardID, bitIndex)
	if err != nil {
		return nil, err
	}

	return slot, nil
}

func (w *Wrapper) GetSlots(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error) {
	ctx, span := w.tracer.Start(ctx, "shardmanager.GetSlots")
	defer span.End()

	span.SetAttributes(attribute.String("shard_id", shardID))

	slots, err := w.svc.GetSlots(ctx, shardID, assigned)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
