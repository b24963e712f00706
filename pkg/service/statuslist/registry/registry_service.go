/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

//go:generate mockgen -destination registry_service_mocks_test.go -self_package github.com/trustbloc/status-list-svc/pkg/service/statuslist/registry -package registry -source=registry_service.go -mock_names definitionStore=MockDefinitionStore,shardCounter=MockShardCounter,eventPublisher=MockEventPublisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/status-list-svc/internal/logfields"
	"github.com/trustbloc/status-list-svc/pkg/doc/statustype"
	"github.com/trustbloc/status-list-svc/pkg/event/spi"
	"github.com/trustbloc/status-list-svc/pkg/restapi/resterr"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

var logger = log.New("statuslist-registry")

const eventSource = "source://status-svc/registry"

type definitionStore interface {
	Create(ctx context.Context, definition *statuslist.Definition) error
	Get(ctx context.Context, definitionID string) (*statuslist.Definition, error)
	Find(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error)
	Update(ctx context.Context, definition *statuslist.Definition) error
	Delete(ctx context.Context, definitionID string) error
}

type shardCounter interface {
	Count(ctx context.Context, definitionID string) (int64, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

// CreateDefinitionRequest holds the attributes of a new definition.
type CreateDefinitionRequest struct {
	StatusPurpose  string            `json:"statusPurpose"`
	StatusSize     int               `json:"statusSize,omitempty"`
	StatusMessages map[string]string `json:"statusMessages,omitempty"`
	ShardCapacity  int               `json:"shardCapacity,omitempty"`
}

// UpdateDefinitionRequest is the whitelist of mutable definition attributes.
// Purpose, status size and the active shard sequence are immutable: the first
// two are baked into existing shards, the last belongs to the allocator.
type UpdateDefinitionRequest struct {
	StatusMessages map[string]string `json:"statusMessages,omitempty"`
	ShardCapacity  int               `json:"shardCapacity,omitempty"`
}

// EventPayload is the data carried by definition lifecycle events.
type EventPayload struct {
	DefinitionID  string `json:"definitionId"`
	StatusPurpose string `json:"statusPurpose"`
	StatusSize    int    `json:"statusSize"`
	ShardCapacity int    `json:"shardCapacity"`
}

type Config struct {
	DefinitionStore      definitionStore
	ShardCounter         shardCounter
	EventPublisher       eventPublisher
	EventTopic           string
	DefaultShardCapacity int
}

type Service struct {
	store                definitionStore
	shardCounter         shardCounter
	eventPublisher       eventPublisher
	eventTopic           string
	defaultShardCapacity int
}

// New returns a new definition registry service.
func New(config *Config) *Service {
	defaultShardCapacity := config.DefaultShardCapacity
	if defaultShardCapacity == 0 {
		defaultShardCapacity = statuslist.DefaultShardCapacity
	}

	return &Service{
		store:                config.DefinitionStore,
		shardCounter:         config.ShardCounter,
		eventPublisher:       config.EventPublisher,
		eventTopic:           config.EventTopic,
		defaultShardCapacity: defaultShardCapacity,
	}
}

// Create validates and persists a new definition.
func (s *Service) Create(ctx context.Context, req *CreateDefinitionRequest) (*statuslist.Definition, error) {
	logger.Debugc(ctx, "Registry - Create", logfields.WithStatusPurpose(req.StatusPurpose))

	statusSize := req.StatusSize
	if statusSize == 0 {
		statusSize = 1
	}

	if err := validateDefinition(req.StatusPurpose, statusSize, req.StatusMessages); err != nil {
		return nil, err
	}

	shardCapacity := req.ShardCapacity
	if shardCapacity == 0 {
		shardCapacity = s.defaultShardCapacity
	}

	if shardCapacity < statusSize {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "shardCapacity",
			fmt.Errorf("shard capacity %d is below the status size %d", shardCapacity, statusSize))
	}

	now := time.Now().UTC()

	definition := &statuslist.Definition{
		ID:             uuid.NewString(),
		StatusPurpose:  req.StatusPurpose,
		StatusSize:     statusSize,
		StatusMessages: req.StatusMessages,
		ShardCapacity:  shardCapacity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, definition); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to create definition: %w", err))
	}

	s.sendEvent(ctx, spi.DefinitionCreated, definition)

	return definition, nil
}

// Get returns the definition by ID.
func (s *Service) Get(ctx context.Context, definitionID string) (*statuslist.Definition, error) {
	definition, err := s.store.Get(ctx, definitionID)
	if err != nil {
		if errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DataNotFound,
				fmt.Errorf("definition %s not found", definitionID))
		}

		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to get definition: %w", err))
	}

	return definition, nil
}

// List returns definitions, optionally filtered by status purpose.
func (s *Service) List(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error) {
	if statusPurpose != "" && !statustype.IsSupportedPurpose(statusPurpose) {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "statusPurpose",
			fmt.Errorf("unsupported status purpose %q", statusPurpose))
	}

	definitions, err := s.store.Find(ctx, statusPurpose)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to list definitions: %w", err))
	}

	return definitions, nil
}

// Update applies the whitelisted attributes of req to the stored definition.
// Existing shards are never touched: a capacity change only affects shards
// created after it.
func (s *Service) Update(ctx context.Context, definitionID string, req *UpdateDefinitionRequest) (*statuslist.Definition, error) {
	definition, err := s.Get(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	if req.StatusMessages != nil {
		if err = statustype.ValidateStatusMessages(definition.StatusSize, req.StatusMessages); err != nil {
			return nil, resterr.NewValidationError(resterr.InvalidValue, "statusMessages", err)
		}
	}

	if req.ShardCapacity != 0 && req.ShardCapacity < definition.StatusSize {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "shardCapacity",
			fmt.Errorf("shard capacity %d is below the status size %d", req.ShardCapacity, definition.StatusSize))
	}

	if err = copier.CopyWithOption(definition, req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, resterr.NewSystemError(resterr.RegistrySvcComponent, "update", err)
	}

	definition.UpdatedAt = time.Now().UTC()

	if err = s.store.Update(ctx, definition); err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to update definition: %w", err))
	}

	s.sendEvent(ctx, spi.DefinitionUpdated, definition)

	return definition, nil
}

// Delete removes the definition. It fails while any shard still references it.
func (s *Service) Delete(ctx context.Context, definitionID string) error {
	definition, err := s.Get(ctx, definitionID)
	if err != nil {
		return err
	}

	count, err := s.shardCounter.Count(ctx, definitionID)
	if err != nil {
		return resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to count shards: %w", err))
	}

	if count > 0 {
		return resterr.NewCustomError(resterr.Conflict,
			fmt.Errorf("definition %s still owns %d status list shard(s)", definitionID, count))
	}

	if err = s.store.Delete(ctx, definitionID); err != nil {
		return resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to delete definition: %w", err))
	}

	s.sendEvent(ctx, spi.DefinitionDeleted, definition)

	return nil
}

func validateDefinition(statusPurpose string, statusSize int, statusMessages map[string]string) error {
	if !statustype.IsSupportedPurpose(statusPurpose) {
		return resterr.NewValidationError(resterr.InvalidValue, "statusPurpose",
			fmt.Errorf("unsupported status purpose %q", statusPurpose))
	}

	if statusSize < 1 {
		return resterr.NewValidationError(resterr.InvalidValue, "statusSize",
			errors.New("status size must be at least 1 bit"))
	}

	if statusMessages == nil {
		if statusSize > 1 {
			return resterr.NewValidationError(resterr.InvalidValue, "statusMessages",
				fmt.Errorf("status messages are required when status size is %d bits", statusSize))
		}

		if statusPurpose == statustype.StatusPurposeMessage {
			return resterr.NewValidationError(resterr.InvalidValue, "statusMessages",
				fmt.Errorf("status messages are required for the %s purpose", statustype.StatusPurposeMessage))
		}

		return nil
	}

	if err := statustype.ValidateStatusMessages(statusSize, statusMessages); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "statusMessages", err)
	}

	return nil
}

func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, definition *statuslist.Definition) {
	payload, err := json.Marshal(&EventPayload{
		DefinitionID:  definition.ID,
		StatusPurpose: definition.StatusPurpose,
		StatusSize:    definition.StatusSize,
		ShardCapacity: definition.ShardCapacity,
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal definition event payload. Ignoring..", log.WithError(err))

		return
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)

	if err = s.eventPublisher.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "Failed to publish definition event. Ignoring..", log.WithError(err),
			logfields.WithDefinitionID(definition.ID))
	}
}
