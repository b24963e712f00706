/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package statuslist_test -source=controller.go -mock_names registryService=MockRegistryService,shardManager=MockShardManager,publisherService=MockPublisherService

package statuslist

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/trustbloc/status-list-svc/pkg/doc/statustype"
	"github.com/trustbloc/status-list-svc/pkg/restapi/resterr"
	"github.com/trustbloc/status-list-svc/pkg/restapi/v1/util"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/publisher"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/registry"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type registryService interface {
	Create(ctx context.Context, req *registry.CreateDefinitionRequest) (*statuslist.Definition, error)
	Get(ctx context.Context, definitionID string) (*statuslist.Definition, error)
	List(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error)
	Update(ctx context.Context, definitionID string, req *registry.UpdateDefinitionRequest) (*statuslist.Definition, error)
	Delete(ctx context.Context, definitionID string) error
}

type shardManager interface {
	Allocate(ctx context.Context, definitionID string) (*statuslist.Entry, error)
	Recycle(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error)
	UpdateStatus(ctx context.Context, shardID string, bitIndex, statusValue int) (*statuslist.Slot, error)
	DeleteShard(ctx context.Context, shardID string) error
	GetShard(ctx context.Context, shardID string) (*statuslist.Shard, error)
	GetShards(ctx context.Context, definitionID string) ([]*statuslist.Shard, error)
	GetSlot(ctx context.Context, shardID string, bitIndex int) (*statuslist.Slot, error)
	GetSlots(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error)
}

type publisherService interface {
	Publish(ctx context.Context, req *publisher.PublishRequest) (*statuslist.PublicationResult, error)
}

type Config struct {
	RegistryService  registryService
	ShardManager     shardManager
	PublisherService publisherService
}

// Controller for the status list management API.
type Controller struct {
	registry     registryService
	shardManager shardManager
	publisher    publisherService
}

// NewController creates a controller for the status list management API and
// registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		registry:     config.RegistryService,
		shardManager: config.ShardManager,
		publisher:    config.PublisherService,
	}

	router.POST("/status-lists/definitions", func(ctx echo.Context) error {
		return c.CreateDefinition(ctx)
	})
	router.GET("/status-lists/definitions", func(ctx echo.Context) error {
		return c.ListDefinitions(ctx)
	})
	router.GET("/status-lists/definitions/:definitionID", func(ctx echo.Context) error {
		return c.GetDefinition(ctx)
	})
	router.PATCH("/status-lists/definitions/:definitionID", func(ctx echo.Context) error {
		return c.UpdateDefinition(ctx)
	})
	router.DELETE("/status-lists/definitions/:definitionID", func(ctx echo.Context) error {
		return c.DeleteDefinition(ctx)
	})
	router.POST("/status-lists/entries", func(ctx echo.Context) error {
		return c.AllocateEntry(ctx)
	})
	router.GET("/status-lists/shards", func(ctx echo.Context) error {
		return c.GetShards(ctx)
	})
	router.GET("/status-lists/shards/:shardID", func(ctx echo.Context) error {
		return c.GetShard(ctx)
	})
	router.DELETE("/status-lists/shards/:shardID", func(ctx echo.Context) error {
		return c.DeleteShard(ctx)
	})
	router.GET("/status-lists/shards/:shardID/entries", func(ctx echo.Context) error {
		return c.GetShardEntries(ctx)
	})
	router.GET("/status-lists/shards/:shardID/entries/:bitIndex", func(ctx echo.Context) error {
		return c.GetShardEntry(ctx)
	})
	router.PATCH("/status-lists/shards/:shardID/entries/:bitIndex", func(ctx echo.Context) error {
		return c.UpdateEntryStatus(ctx)
	})
	router.POST("/status-lists/shards/:shardID/entries/:bitIndex/recycle", func(ctx echo.Context) error {
		return c.RecycleEntry(ctx)
	})
	router.POST("/status-lists/publications", func(ctx echo.Context) error {
		return c.PublishStatusLists(ctx)
	})

	return c
}

// CreateDefinition creates a status list definition.
// (POST /status-lists/definitions).
func (c *Controller) CreateDefinition(ctx echo.Context) error {
	var body CreateDefinitionData

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(c.registry.Create(ctx.Request().Context(),
		&registry.CreateDefinitionRequest{
			StatusPurpose:  body.StatusPurpose,
			StatusSize:     body.StatusSize,
			StatusMessages: body.StatusMessages,
			ShardCapacity:  body.ShardCapacity,
		}))
}

// ListDefinitions lists definitions, optionally filtered by status purpose.
// (GET /status-lists/definitions).
func (c *Controller) ListDefinitions(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.registry.List(ctx.Request().Context(), ctx.QueryParam("statusPurpose")))
}

// GetDefinition returns a definition by ID.
// (GET /status-lists/definitions/:definitionID).
func (c *Controller) GetDefinition(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.registry.Get(ctx.Request().Context(), ctx.Param("definitionID")))
}

// UpdateDefinition applies the mutable attributes of a definition. Unknown
// and immutable fields are rejected.
// (PATCH /status-lists/definitions/:definitionID).
func (c *Controller) UpdateDefinition(ctx echo.Context) error {
	var body UpdateDefinitionData

	if err := util.ReadBodyStrict(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.registry.Update(ctx.Request().Context(), ctx.Param("definitionID"),
		&registry.UpdateDefinitionRequest{
			StatusMessages: body.StatusMessages,
			ShardCapacity:  body.ShardCapacity,
		}))
}

// DeleteDefinition deletes a definition that has no shards.
// (DELETE /status-lists/definitions/:definitionID).
func (c *Controller) DeleteDefinition(ctx echo.Context) error {
	if err := c.registry.Delete(ctx.Request().Context(), ctx.Param("definitionID")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AllocateEntry allocates a status list entry for a definition.
// (POST /status-lists/entries).
func (c *Controller) AllocateEntry(ctx echo.Context) error {
	var body AllocateEntryData

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.DefinitionID == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "definitionId",
			errors.New("definition ID is required"))
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(
		c.shardManager.Allocate(ctx.Request().Context(), body.DefinitionID))
}

// GetShards lists the shards of a definition in sequence order.
// (GET /status-lists/shards).
func (c *Controller) GetShards(ctx echo.Context) error {
	definitionID := ctx.QueryParam("definitionID")
	if definitionID == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "definitionID",
			errors.New("definitionID query parameter is required"))
	}

	return util.WriteOutput(ctx)(c.shardManager.GetShards(ctx.Request().Context(), definitionID))
}

// GetShard returns a shard by ID.
// (GET /status-lists/shards/:shardID).
func (c *Controller) GetShard(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.shardManager.GetShard(ctx.Request().Context(), ctx.Param("shardID")))
}

// DeleteShard deletes a shard together with all of its slots.
// (DELETE /status-lists/shards/:shardID).
func (c *Controller) DeleteShard(ctx echo.Context) error {
	if err := c.shardManager.DeleteShard(ctx.Request().Context(), ctx.Param("shardID")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShardEntries lists the slots of a shard, optionally filtered by
// assignment. (GET /status-lists/shards/:shardID/entries).
func (c *Controller) GetShardEntries(ctx echo.Context) error {
	var assigned *bool

	if v := ctx.QueryParam("assigned"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return resterr.NewValidationError(resterr.InvalidValue, "assigned", err)
		}

		assigned = lo.ToPtr(parsed)
	}

	return util.WriteOutput(ctx)(c.shardManager.GetSlots(ctx.Request().Context(), ctx.Param("shardID"), assigned))
}

// GetShardEntry returns a single slot.
// (GET /status-lists/shards/:shardID/entries/:bitIndex).
func (c *Controller) GetShardEntry(ctx echo.Context) error {
	bitIndex, err := bitIndexParam(ctx)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.shardManager.GetSlot(ctx.Request().Context(), ctx.Param("shardID"), bitIndex))
}

// UpdateEntryStatus sets the status value of a slot. Only the status field
// is writable. (PATCH /status-lists/shards/:shardID/entries/:bitIndex).
func (c *Controller) UpdateEntryStatus(ctx echo.Context) error {
	bitIndex, err := bitIndexParam(ctx)
	if err != nil {
		return err
	}

	var body UpdateEntryStatusData

	if err = util.ReadBodyStrict(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(
		c.shardManager.UpdateStatus(ctx.Request().Context(), ctx.Param("shardID"), bitIndex, body.Status))
}

// RecycleEntry releases a slot: its status is reset and the binding is
// dissolved. (POST /status-lists/shards/:shardID/entries/:bitIndex/recycle).
func (c *Controller) RecycleEntry(ctx echo.Context) error {
	bitIndex, err := bitIndexParam(ctx)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.shardManager.Recycle(ctx.Request().Context(), ctx.Param("shardID"), bitIndex))
}

// PublishStatusLists builds, signs and publishes the status list tokens of a
// definition. (POST /status-lists/publications).
func (c *Controller) PublishStatusLists(ctx echo.Context) error {
	var body PublishStatusListsData

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.publisher.Publish(ctx.Request().Context(), &publisher.PublishRequest{
		DefinitionID: body.DefinitionID,
		IssuerDID:    body.IssuerDID,
		Format:       statustype.Format(body.Format),
		PublishURI:   body.PublishURI,
	}))
}

func bitIndexParam(ctx echo.Context) (int, error) {
	bitIndex, err := strconv.Atoi(ctx.Param("bitIndex"))
	if err != nil {
		return 0, resterr.NewValidationError(resterr.InvalidValue, "bitIndex", err)
	}

	return bitIndex, nil
}
