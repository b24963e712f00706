/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package definitionstore

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
	collectionName = "status_list_definitions"
)

type mongoDocument struct {
	ID                  string            `bson:"_id"`
	StatusPurpose       string            `bson:"statusPurpose"`
	StatusSize          int               `bson:"statusSize"`
	StatusMessages      map[string]string `bson:"statusMessages,omitempty"`
	ShardCapacity       int               `bson:"shardCapacity"`
	ActiveShardSequence *int              `bson:"activeShardSequence,omitempty"`
	CreatedAt           time.Time         `bson:"createdAt"`
	UpdatedAt           time.Time         `bson:"updatedAt"`
}

// Store stores status list definitions in mongo.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates a definition store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateOne(ctx, mongo.IndexModel{
			Keys: map[string]interface{}{
				"statusPurpose": 1,
			},
		})

	return err
}

func (s *Store) Create(ctx context.Context, definition *statuslist.Definition) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.InsertOne(ctx, mapDefinitionToMongoDocument(definition))
	if err != nil {
		return fmt.Errorf("failed to insert definition: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, definitionID string) (*statuslist.Definition, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	err := collection.FindOne(ctx, bson.M{"_id": definitionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, statuslist.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("definition find failed: %w", err)
	}

	return mapDocumentToDefinition(&doc), nil
}

func (s *Store) Find(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	filter := bson.M{}
	if statusPurpose != "" {
		filter["statusPurpose"] = statusPurpose
	}

	cursor, err := collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("definition find failed: %w", err)
	}

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}

	definitions := make([]*statuslist.Definition, len(docs))
	for i := range docs {
		definitions[i] = mapDocumentToDefinition(&docs[i])
	}

	return definitions, nil
}

func (s *Store) Update(ctx context.Context, definition *statuslist.Definition) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.UpdateByID(ctx, definition.ID, bson.M{
		"$set": mapDefinitionToMongoDocument(definition),
	})
	if err != nil {
		return fmt.Errorf("failed to update definition: %w", err)
	}

	if result.MatchedCount == 0 {
		return statuslist.ErrDataNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, definitionID string) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": definitionID})
	if err != nil {
		return fmt.Errorf("failed to delete definition: %w", err)
	}

	if result.DeletedCount == 0 {
		return statuslist.ErrDataNotFound
	}

	return nil
}

func mapDefinitionToMongoDocument(definition *statuslist.Definition) *mongoDocument {
	return &mongoDocument{
		ID:                  definition.ID,
		StatusPurpose:       definition.StatusPurpose,
		StatusSize:          definition.StatusSize,
		StatusMessages:      definition.StatusMessages,
		ShardCapacity:       definition.ShardCapacity,
		ActiveShardSequence: definition.ActiveShardSequence,
		CreatedAt:           definition.CreatedAt,
		UpdatedAt:           definition.UpdatedAt,
	}
}

func mapDocumentToDefinition(doc *mongoDocument) *statuslist.Definition {
	return &statuslist.Definition{
		ID:                  doc.ID,
		StatusPurpose:       doc.StatusPurpose,
		StatusSize:          doc.StatusSize,
		StatusMessages:      doc.StatusMessages,
		ShardCapacity:       doc.ShardCapacity,
		ActiveShardSequence: doc.ActiveShardSequence,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}
