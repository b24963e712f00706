/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import "errors"

var (
	ErrDataNotFound = errors.New("data not found")
)
