/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"strconv"
	"time"
)

// StatusList carries the packed list inside an IETF status list token.
type StatusList struct {
	// Bits is the entry width in bits, as text.
	Bits string `json:"bits"`
	// Lst is the compressed, base64url-encoded bit array.
	Lst string `json:"lst"`
}

// StatusListTokenPayload is the payload of an IETF statuslist+jwt token.
// Spec: https://datatracker.ietf.org/doc/draft-ietf-oauth-status-list/
type StatusListTokenPayload struct {
	Issuer     string     `json:"iss"`
	NotBefore  int64      `json:"nbf"`
	JTI        string     `json:"jti"`
	Subject    string     `json:"sub"`
	IssuedAt   int64      `json:"iat"`
	Expiry     int64      `json:"exp"`
	TTL        int        `json:"ttl"`
	StatusList StatusList `json:"status_list"`
}

// TokenParams holds the inputs common to both envelope formats.
type TokenParams struct {
	Issuer        string
	ID            string
	Subject       string
	StatusPurpose string
	BitsPerEntry  int
	EncodedList   string
	IssuedAt      time.Time
}

// NewStatusListTokenPayload builds the payload of an IETF status list token.
func NewStatusListTokenPayload(params *TokenParams) *StatusListTokenPayload {
	issuedAt := params.IssuedAt
	expiry := issuedAt.AddDate(0, 0, ValidityDays)

	return &StatusListTokenPayload{
		Issuer:    params.Issuer,
		NotBefore: issuedAt.Unix(),
		JTI:       params.ID,
		Subject:   params.Subject,
		IssuedAt:  issuedAt.Unix(),
		Expiry:    expiry.Unix(),
		TTL:       DefaultTTL,
		StatusList: StatusList{
			Bits: strconv.Itoa(params.BitsPerEntry),
			Lst:  params.EncodedList,
		},
	}
}

// Headers returns the JOSE protected headers of an IETF status list token.
func (p *StatusListTokenPayload) Headers() map[string]interface{} {
	return map[string]interface{}{
		"typ": StatusListTokenType,
	}
}
