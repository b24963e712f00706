/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package slotstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb"
)

const (
	collectionName = "status_list_slots"
)

type mongoDocument struct {
	ID             string `bson:"_id"`
	ShardID        string `bson:"shardId"`
	BitIndex       int    `bson:"bitIndex"`
	AllocationRank int    `bson:"allocationRank"`
	StatusValue    int    `bson:"statusValue"`
	Assigned       bool   `bson:"assigned"`
}

// Store stores status list slots in mongo. Within a shard both the bit index
// and the allocation rank are unique.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates a slot store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "shardId", Value: 1},
					{Key: "bitIndex", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "shardId", Value: 1},
					{Key: "allocationRank", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		})

	return err
}

// CreateMany persists the full slot population of a fresh shard in one bulk
// insert.
func (s *Store) CreateMany(ctx context.Context, slots []*statuslist.Slot) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	docs := lo.Map(slots, func(slot *statuslist.Slot, _ int) interface{} {
		return mapSlotToMongoDocument(slot)
	})

	_, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert slots: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error) {
	return s.findOne(ctx, bson.M{"shardId": shardID, "bitIndex": bitIndex})
}

func (s *Store) GetByRank(ctx context.Context, shardID string, rank int) (*statuslist.Slot, error) {
	return s.findOne(ctx, bson.M{"shardId": shardID, "allocationRank": rank})
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*statuslist.Slot, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	err := collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, statuslist.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("slot find failed: %w", err)
	}

	return mapDocumentToSlot(&doc), nil
}

// Find returns the shard's slots ordered by bit index. A non-nil assigned
// filters by assignment state.
func (s *Store) Find(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	filter := bson.M{"shardId": shardID}
	if assigned != nil {
		filter["assigned"] = *assigned
	}

	cursor, err := collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "bitIndex", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("slot find failed: %w", err)
	}

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	slots := make([]*statuslist.Slot, len(docs))
	for i := range docs {
		slots[i] = mapDocumentToSlot(&docs[i])
	}

	return slots, nil
}

func (s *Store) Update(ctx context.Context, slot *statuslist.Slot) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.UpdateByID(ctx, slot.ID, bson.M{
		"$set": mapSlotToMongoDocument(slot),
	})
	if err != nil {
		return fmt.Errorf("failed to update slot: %w", err)
	}

	if result.MatchedCount == 0 {
		return statuslist.ErrDataNotFound
	}

	return nil
}

func (s *Store) DeleteByShard(ctx context.Context, shardID string) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.DeleteMany(ctx, bson.M{"shardId": shardID})
	if err != nil {
		return fmt.Errorf("failed to delete slots: %w", err)
	}

	return nil
}

func mapSlotToMongoDocument(slot *statuslist.Slot) *mongoDocument {
	return &mongoDocument{
		ID:             slot.ID,
		ShardID:        slot.ShardID,
		BitIndex:       slot.BitIndex,
		AllocationRank: slot.AllocationRank,
		StatusValue:    slot.StatusValue,
		Assigned:       slot.Assigned,
	}
}

func mapDocumentToSlot(doc *mongoDocument) *statuslist.Slot {
	return &statuslist.Slot{
		ID:             doc.ID,
		ShardID:        doc.ShardID,
		BitIndex:       doc.BitIndex,
		AllocationRank: doc.AllocationRank,
		StatusValue:    doc.StatusValue,
		Assigned:       doc.Assigned,
	}
}
