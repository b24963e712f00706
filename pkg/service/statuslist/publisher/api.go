/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package publisher

import (
	"context"

	"github.com/trustbloc/status-list-svc/pkg/service/statuslist"
)

type ServiceInterface interface {
	Publish(ctx context.Context, req *PublishRequest) (*statuslist.PublicationResult, error)
}
