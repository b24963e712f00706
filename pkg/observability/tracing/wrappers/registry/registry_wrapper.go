/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package registry . Service

//nolint:lll
package registry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/status-list-svc/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/registry"
)

type Service registry.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Create(ctx context.Context, req *registry.CreateDefinitionRequest) (*statuslist.Definition, error) {
	ctx, span := w.tracer.Start(ctx, "registry.Create")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("request", req, attributeutil.WithRedacted("statusMessages")))

	definition, err := w.svc.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return definition, nil
}

func (w *Wrapper) Get(ctx context.Context, definitionID string) (*statuslist.Definition, error) {
	ctx, span := w.tracer.Start(ctx, "registry.Get")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", definitionID))

	definition, err := w.svc.Get(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	return definition, nil
}

func (w *Wrapper) List(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error) {
	ctx, span := w.tracer.Start(ctx, "registry.List")
	defer span.End()

	span.SetAttributes(attribute.String("status_purpose", statusPurpose))

	definitions, err := w.svc.List(ctx, statusPurpose)
	if err != nil {
		return nil, err
	}

	return definitions, nil
}

func (w *Wrapper) Update(ctx context.Context, definitionID string, req *registry.UpdateDefinitionRequest) (*statuslist.Definition, error) {
	ctx, span := w.tracer.Start(ctx, "registry.Update")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", definitionID))
	span.SetAttributes(attributeutil.JSON("request", req, attributeutil.WithRedacted("statusMessages")))

	definition, err := w.svc.Update(ctx, definitionID, req)
	if err != nil {
		return nil, err
	}

	return definition, nil
}

func (w *Wrapper) Delete(ctx context.Context, definitionID string) error {
	ctx, span := w.tracer.Start(ctx, "registry.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("definition_id", definitionID))

	err := w.svc.Delete(ctx, definitionID)
	if err != nil {
		return err
	}

	return nil
}
