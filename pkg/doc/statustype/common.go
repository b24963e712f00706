/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"fmt"
	"strings"
)

const (
	// StatusPurposeRevocation revocation purpose.
	StatusPurposeRevocation = "revocation"
	// StatusPurposeSuspension suspension purpose.
	StatusPurposeSuspension = "suspension"
	// StatusPurposeMessage message purpose.
	StatusPurposeMessage = "message"
)

const (
	// StatusListBitstringVCType is the type of a status list credential.
	StatusListBitstringVCType = "BitstringStatusListCredential"

	// StatusListBitstringVCSubjectType is the subject type of a status list credential.
	StatusListBitstringVCSubjectType = "BitstringStatusList"

	// VCContextV2 is the W3C credentials v2 context.
	VCContextV2 = "https://www.w3.org/ns/credentials/v2"

	// StatusListTokenType is the JOSE "typ" header of an IETF status list token.
	StatusListTokenType = "statuslist+jwt"
)

const (
	// DefaultTTL is the time-to-live hint of a published status list, in seconds.
	DefaultTTL = 43200

	// ValidityDays is the validity period of a published status list.
	ValidityDays = 365
)

// Format is the publication envelope format.
type Format string

const (
	// FormatIETF produces an IETF statuslist+jwt token.
	FormatIETF = Format("ietf")
	// FormatW3C produces a W3C BitstringStatusListCredential token.
	FormatW3C = Format("w3c")
)

// ParseFormat parses a publication format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(value) {
	case string(FormatIETF):
		return FormatIETF, nil
	case string(FormatW3C):
		return FormatW3C, nil
	default:
		return "", fmt.Errorf("unsupported format %q, use one of [ietf w3c]", value)
	}
}

// IsSupportedPurpose checks a status purpose name.
func IsSupportedPurpose(purpose string) bool {
	switch purpose {
	case StatusPurposeRevocation, StatusPurposeSuspension, StatusPurposeMessage:
		return true
	default:
		return false
	}
}

// ValidateStatusMessages validates a status-message map against the status
// bit width: the map must hold one entry per representable bit pattern, keyed
// by a "0x"-prefixed pattern with a non-empty label.
func ValidateStatusMessages(statusSize int, messages map[string]string) error {
	size := 1 << uint(statusSize)

	if len(messages) != size {
		return fmt.Errorf("statusMessage map size must be %d", size)
	}

	for status, message := range messages {
		if len(status) < 3 || status[0:2] != "0x" {
			return fmt.Errorf("status %q must be a hex string", status)
		}

		if message == "" {
			return fmt.Errorf("message for status %s not found", status)
		}
	}

	return nil
}
