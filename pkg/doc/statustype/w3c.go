/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"time"
)

// BitstringStatusList is the credential subject of a status list credential.
type BitstringStatusList struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	StatusPurpose string `json:"statusPurpose,omitempty"`
	EncodedList   string `json:"encodedList"`
}

// BitstringStatusListCredential is a W3C status list credential.
// Spec: https://www.w3.org/TR/vc-bitstring-status-list/
type BitstringStatusListCredential struct {
	Context           []string            `json:"@context"`
	ID                string              `json:"id"`
	Type              []string            `json:"type"`
	Issuer            string              `json:"issuer"`
	ValidFrom         string              `json:"validFrom"`
	ValidUntil        string              `json:"validUntil"`
	CredentialSubject BitstringStatusList `json:"credentialSubject"`
}

// CredentialTokenPayload is the payload of a W3C status list credential token.
type CredentialTokenPayload struct {
	Issuer    string                        `json:"iss"`
	NotBefore int64                         `json:"nbf"`
	JTI       string                        `json:"jti"`
	Subject   string                        `json:"sub"`
	VC        BitstringStatusListCredential `json:"vc"`
}

// NewCredentialTokenPayload builds the payload of a W3C status list credential token.
func NewCredentialTokenPayload(params *TokenParams) *CredentialTokenPayload {
	issuedAt := params.IssuedAt
	expiry := issuedAt.AddDate(0, 0, ValidityDays)

	return &CredentialTokenPayload{
		Issuer:    params.Issuer,
		NotBefore: issuedAt.Unix(),
		JTI:       params.ID,
		Subject:   params.Subject,
		VC: BitstringStatusListCredential{
			Context:    []string{VCContextV2},
			ID:         params.Subject,
			Type:       []string{"VerifiableCredential", StatusListBitstringVCType},
			Issuer:     params.Issuer,
			ValidFrom:  issuedAt.Format(time.RFC3339),
			ValidUntil: expiry.Format(time.RFC3339),
			CredentialSubject: BitstringStatusList{
				ID:            params.Subject + "#list",
				Type:          StatusListBitstringVCSubjectType,
				StatusPurpose: params.StatusPurpose,
				EncodedList:   params.EncodedList,
			},
		},
	}
}

// Headers returns the JOSE protected headers of a W3C status list credential token.
func (p *CredentialTokenPayload) Headers() map[string]interface{} {
	return map[string]interface{}{}
}
