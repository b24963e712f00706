/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package publisher . Service

//nolint:lll
package publisher

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/status-list-svc/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/publisher"
)

type Service publisher.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Publish(ctx context.Context, req *publisher.PublishRequest) (*statuslist.PublicationResult, error) {
	ctx, span := w.tracer.Start(ctx, "publisher.Publish")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", req.DefinitionID))
	span.SetAttributes(attributeutil.JSON("request", req))

	result, err := w.svc.Publish(ctx, req)
	if err != nil {
		return nil, err
	}

	return result, nil
}
