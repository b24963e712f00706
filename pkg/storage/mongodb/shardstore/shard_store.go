/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shardstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb"
)

const (
	collectionName = "status_list_shards"
)

type mongoDocument struct {
	ID               string    `bson:"_id"`
	DefinitionID     string    `bson:"definitionId"`
	Sequence         int       `bson:"sequence"`
	Capacity         int       `bson:"capacity"`
	SlotBitWidth     int       `bson:"slotBitWidth"`
	AllocationCursor int       `bson:"allocationCursor"`
	CreatedAt        time.Time `bson:"createdAt"`
}

// Store stores status list shards in mongo. A shard's sequence is unique
// within its definition.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates a shard store.
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
					{Key: "definitionId", Value: 1},
					{Key: "sequence", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		})

	return err
}

func (s *Store) Create(ctx context.Context, shard *statuslist.Shard) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.InsertOne(ctx, mapShardToMongoDocument(shard))
	if err != nil {
		return fmt.Errorf("failed to insert shard: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, shardID string) (*statuslist.Shard, error) {
	return s.findOne(ctx, bson.M{"_id": shardID})
}

func (s *Store) GetBySequence(ctx context.Context, definitionID string, sequence int) (*statuslist.Shard, error) {
	return s.findOne(ctx, bson.M{"definitionId": definitionID, "sequence": sequence})
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*statuslist.Shard, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	err := collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, statuslist.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("shard find failed: %w", err)
	}

	return mapDocumentToShard(&doc), nil
}

func (s *Store) Find(ctx context.Context, definitionID string) ([]*statuslist.Shard, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	cursor, err := collection.Find(ctx, bson.M{"definitionId": definitionID},
		options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("shard find failed: %w", err)
	}

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode shards: %w", err)
	}

	shards := make([]*statuslist.Shard, len(docs))
	for i := range docs {
		shards[i] = mapDocumentToShard(&docs[i])
	}

	return shards, nil
}

func (s *Store) Update(ctx context.Context, shard *statuslist.Shard) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.UpdateByID(ctx, shard.ID, bson.M{
		"$set": mapShardToMongoDocument(shard),
	})
	if err != nil {
		return fmt.Errorf("failed to update shard: %w", err)
	}

	if result.MatchedCount == 0 {
		return statuslist.ErrDataNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, shardID string) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": shardID})
	if err != nil {
		return fmt.Errorf("failed to delete shard: %w", err)
	}

	if result.DeletedCount == 0 {
		return statuslist.ErrDataNotFound
	}

	return nil
}

func (s *Store) Count(ctx context.Context, definitionID string) (int64, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	count, err := collection.CountDocuments(ctx, bson.M{"definitionId": definitionID})
	if err != nil {
		return 0, fmt.Errorf("shard count failed: %w", err)
	}

	return count, nil
}

func mapShardToMongoDocument(shard *statuslist.Shard) *mongoDocument {
	return &mongoDocument{
		ID:               shard.ID,
		DefinitionID:     shard.DefinitionID,
		Sequence:         shard.Sequence,
		Capacity:         shard.Capacity,
		SlotBitWidth:     shard.SlotBitWidth,
		AllocationCursor: shard.AllocationCursor,
		CreatedAt:        shard.CreatedAt,
	}
}

func mapDocumentToShard(doc *mongoDocument) *statuslist.Shard {
	return &statuslist.Shard{
		ID:               doc.ID,
		DefinitionID:     doc.DefinitionID,
		Sequence:         doc.Sequence,
		Capacity:         doc.Capacity,
		SlotBitWidth:     doc.SlotBitWidth,
		AllocationCursor: doc.AllocationCursor,
		CreatedAt:        doc.CreatedAt,
	}
}
