/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"context"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

type ServiceInterface interface {
	Create(ctx context.Context, req *CreateDefinitionRequest) (*statuslist.Definition, error)
	Get(ctx context.Context, definitionID string) (*statuslist.Definition, error)
	List(ctx context.Context, statusPurpose string) ([]*statuslist.Definition, error)
	Update(ctx context.Context, definitionID string, req *UpdateDefinitionRequest) (*statuslist.Definition, error)
	Delete(ctx context.Context, definitionID string) error
}
