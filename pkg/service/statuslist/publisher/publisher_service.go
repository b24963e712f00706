/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination publisher_service_mocks_test.go -self_package github.com/trustbloc/status-list-svc/pkg/service/statuslist/publisher -package publisher -source=publisher_service.go -mock_names definitionStore=MockDefinitionStore,shardStore=MockShardStore,slotStore=MockSlotStore,tokenSigner=MockTokenSigner,tokenSink=MockTokenSink,eventPublisher=MockEventPublisher,metricsProvider=MockMetricsProvider

package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/status-list-svc/internal/logfields"
	"github.com/trustbloc/status-list-svc/pkg/doc/bitstring"
	"github.com/trustbloc/status-list-svc/pkg/doc/statustype"
	"github.com/trustbloc/status-list-svc/pkg/event/spi"
	"github.com/trustbloc/status-list-svc/pkg/observability/metrics/noop"
	"github.com/trustbloc/status-list-svc/pkg/restapi/resterr"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

var logger = log.New("statuslist-publisher")

const eventSource = "source://status-svc/publisher"

type definitionStore interface {
	Get(ctx context.Context, definitionID string) (*statuslist.Definition, error)
}

type shardStore interface {
	Find(ctx context.Context, definitionID string) ([]*statuslist.Shard, error)
}

type slotStore interface {
	Find(ctx context.Context, shardID string, assigned *bool) ([]*statuslist.Slot, error)
}

type tokenSigner interface {
	Sign(headers map[string]interface{}, payload interface{}) (string, error)
}

type tokenSink interface {
	Put(ctx context.Context, uri string, token []byte) (string, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	SignTime(value time.Duration)
	PublishStatusListsTime(value time.Duration)
}

// PublishRequest is the input of one publication run.
type PublishRequest struct {
	DefinitionID string
	// IssuerDID becomes the iss claim of every token.
	IssuerDID string
	Format    statustype.Format
	// PublishURI is the sink location the signed tokens are written under.
	// Empty means a dry run: tokens are built and signed but not written.
	PublishURI string
}

// EventPayload is the data carried by publication events.
type EventPayload struct {
	DefinitionID string `json:"definitionId"`
	Format       string `json:"format"`
	ShardCount   int    `json:"shardCount"`
}

type Config struct {
	DefinitionStore definitionStore
	ShardStore      shardStore
	SlotStore       slotStore
	Signer          tokenSigner
	S3Sink          tokenSink
	FSSink          tokenSink
	ExternalHost    string
	EventPublisher  eventPublisher
	EventTopic      string
	Metrics         metricsProvider
}

// Service builds, signs and publishes the status list tokens of a definition.
type Service struct {
	definitionStore definitionStore
	shardStore      shardStore
	slotStore       slotStore
	signer          tokenSigner
	s3Sink          tokenSink
	fsSink          tokenSink
	externalHost    string
	eventPublisher  eventPublisher
	eventTopic      string
	metrics         metricsProvider
}

// New returns a new publisher service.
func New(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		definitionStore: config.DefinitionStore,
		shardStore:      config.ShardStore,
		slotStore:       config.SlotStore,
		signer:          config.Signer,
		s3Sink:          config.S3Sink,
		fsSink:          config.FSSink,
		externalHost:    strings.TrimSuffix(config.ExternalHost, "/"),
		eventPublisher:  config.EventPublisher,
		eventTopic:      config.EventTopic,
		metrics:         m,
	}
}

// Publish builds and signs one token per shard of the definition and, unless
// the request is a dry run, writes each token to the sink. A shard failure is
// recorded on that shard's publication and does not abort its siblings.
func (s *Service) Publish(ctx context.Context, req *PublishRequest) (*statuslist.PublicationResult, error) {
	logger.Debugc(ctx, "Publisher - Publish", logfields.WithDefinitionID(req.DefinitionID),
		logfields.WithFormat(string(req.Format)))

	startTime := time.Now()

	defer func() {
		s.metrics.PublishStatusListsTime(time.Since(startTime))
	}()

	switch req.Format {
	case statustype.FormatIETF, statustype.FormatW3C:
	default:
		return nil, resterr.NewValidationError(resterr.InvalidValue, "format",
			fmt.Errorf("unsupported format %q, use one of [%s %s]", req.Format, statustype.FormatIETF,
				statustype.FormatW3C))
	}

	if req.IssuerDID == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "issuerDid",
			errors.New("issuer DID is required"))
	}

	definition, err := s.definitionStore.Get(ctx, req.DefinitionID)
	if err != nil {
		if errors.Is(err, statuslist.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DataNotFound,
				fmt.Errorf("definition %s not found", req.DefinitionID))
		}

		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to get definition: %w", err))
	}

	shards, err := s.shardStore.Find(ctx, req.DefinitionID)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StorageError, fmt.Errorf("failed to find shards: %w", err))
	}

	result := &statuslist.PublicationResult{
		DefinitionID: definition.ID,
		IssuerDID:    req.IssuerDID,
		Format:       req.Format,
		Shards:       make([]*statuslist.ShardPublication, 0, len(shards)),
	}

	// every shard of the run carries the same issuance instant
	issuedAt := time.Now().UTC()

	for _, shard := range shards {
		result.Shards = append(result.Shards, s.publishShard(ctx, definition, shard, req, issuedAt))
	}

	s.sendEvent(ctx, definition.ID, req.Format, len(result.Shards))

	return result, nil
}

func (s *Service) publishShard(ctx context.Context, definition *statuslist.Definition,
	shard *statuslist.Shard, req *PublishRequest, issuedAt time.Time) *statuslist.ShardPublication {
	publication := &statuslist.ShardPublication{
		ShardID:  shard.ID,
		Sequence: shard.Sequence,
	}

	encodedList, err := s.encodeShard(ctx, shard)
	if err != nil {
		publication.Error = err.Error()

		logger.Warnc(ctx, "Failed to encode status list shard", log.WithError(err),
			logfields.WithShardID(shard.ID))

		return publication
	}

	params := &statustype.TokenParams{
		Issuer:        req.IssuerDID,
		ID:            "urn:uuid:" + shard.ID,
		Subject:       fmt.Sprintf("%s/credentials/status/%d", s.externalHost, shard.Sequence),
		StatusPurpose: definition.StatusPurpose,
		BitsPerEntry:  shard.SlotBitWidth,
		EncodedList:   encodedList,
		IssuedAt:      issuedAt,
	}

	var (
		payload interface{}
		headers map[string]interface{}
	)

	if req.Format == statustype.FormatW3C {
		p := statustype.NewCredentialTokenPayload(params)
		payload, headers = p, p.Headers()
	} else {
		p := statustype.NewStatusListTokenPayload(params)
		payload, headers = p, p.Headers()
	}

	publication.Payload = payload

	signStart := time.Now()

	token, err := s.signer.Sign(headers, payload)

	s.metrics.SignTime(time.Since(signStart))

	if err != nil {
		publication.Error = fmt.Sprintf("failed to sign status list token: %s", err)

		logger.Warnc(ctx, "Failed to sign status list token", log.WithError(err),
			logfields.WithShardID(shard.ID))

		return publication
	}

	publication.Token = token

	if req.PublishURI == "" {
		return publication
	}

	sink := s.fsSink
	if strings.HasPrefix(req.PublishURI, "s3://") {
		sink = s.s3Sink
	}

	if sink == nil {
		publication.Error = fmt.Sprintf("no sink configured for %s", req.PublishURI)

		return publication
	}

	artifactURI, err := sink.Put(ctx,
		fmt.Sprintf("%s/%d-%s.jwt", strings.TrimSuffix(req.PublishURI, "/"), shard.Sequence, req.Format),
		[]byte(token))
	if err != nil {
		publication.Error = fmt.Sprintf("failed to write status list artifact: %s", err)

		logger.Warnc(ctx, "Failed to write status list artifact", log.WithError(err),
			logfields.WithShardID(shard.ID))

		return publication
	}

	publication.ArtifactURI = artifactURI

	logger.Debugc(ctx, "published status list shard", logfields.WithShardID(shard.ID),
		logfields.WithSequence(shard.Sequence), logfields.WithSinkURI(artifactURI))

	return publication
}

// encodeShard packs the shard's slot values into a compressed bitstring. The
// array always spans the full capacity, so the published list never shrinks as
// slots come and go.
func (s *Service) encodeShard(ctx context.Context, shard *statuslist.Shard) (string, error) {
	slots, err := s.slotStore.Find(ctx, shard.ID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to find slots: %w", err)
	}

	bits := bitstring.NewBitString(shard.SlotCount(), bitstring.WithBitsPerEntry(shard.SlotBitWidth))

	for _, slot := range slots {
		if slot.StatusValue == 0 {
			continue
		}

		if err = bits.Set(slot.BitIndex/shard.SlotBitWidth, uint64(slot.StatusValue)); err != nil {
			return "", fmt.Errorf("failed to set status at bit index %d: %w", slot.BitIndex, err)
		}
	}

	encodedList, err := bits.EncodeBits()
	if err != nil {
		return "", fmt.Errorf("failed to encode status list: %w", err)
	}

	return encodedList, nil
}

func (s *Service) sendEvent(ctx context.Context, definitionID string, format statustype.Format, shardCount int) {
	payload, err := json.Marshal(&EventPayload{
		DefinitionID: definitionID,
		Format:       string(format),
		ShardCount:   shardCount,
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal publication event payload. Ignoring..", log.WithError(err))

		return
	}

	if err = s.eventPublisher.Publish(ctx, s.eventTopic,
		spi.NewEventWithPayload(uuid.NewString(), eventSource, spi.StatusListPublished, payload)); err != nil {
		logger.Warnc(ctx, "Failed to publish publication event. Ignoring..", log.WithError(err),
			logfields.WithDefinitionID(definitionID))
	}
}
