/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"

	"github.com/go-jose/go-jose/v3"
)

// JWSSigner produces compact JWS tokens with a locally held signing key.
type JWSSigner struct {
	key       crypto.Signer
	keyID     string
	algorithm jose.SignatureAlgorithm
}

// New returns a signer for the given key. The signature algorithm is derived
// from the key type.
func New(key crypto.Signer, keyID string) (*JWSSigner, error) {
	algorithm, err := algorithmForKey(key)
	if err != nil {
		return nil, err
	}

	return &JWSSigner{
		key:       key,
		keyID:     keyID,
		algorithm: algorithm,
	}, nil
}

// Sign marshals the payload to JSON and returns a compact JWS with the given
// protected headers.
func (s *JWSSigner) Sign(headers map[string]interface{}, payload interface{}) (string, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	opts := &jose.SignerOptions{
		ExtraHeaders: map[jose.HeaderKey]interface{}{},
	}

	for k, v := range headers {
		opts.ExtraHeaders[jose.HeaderKey(k)] = v
	}

	if s.keyID != "" {
		opts.ExtraHeaders[jose.HeaderKey("kid")] = s.keyID
	}

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: s.algorithm,
		Key:       s.key,
	}, opts)
	if err != nil {
		return "", fmt.Errorf("create signer: %w", err)
	}

	jws, err := signer.Sign(payloadBytes)
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}

	token, err := jws.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize token: %w", err)
	}

	return token, nil
}

// FromPEM parses a PEM-encoded private key (PKCS#8 or SEC 1).
func FromPEM(pemBytes []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("key of type %T is not a signer", key)
		}

		return signer, nil
	}

	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	return nil, fmt.Errorf("unsupported private key encoding")
}

func algorithmForKey(key crypto.Signer) (jose.SignatureAlgorithm, error) {
	switch k := key.(type) {
	case ed25519.PrivateKey:
		return jose.EdDSA, nil
	case *ecdsa.PrivateKey:
		switch k.Curve {
		case elliptic.P256():
			return jose.ES256, nil
		case elliptic.P384():
			return jose.ES384, nil
		default:
			return "", fmt.Errorf("unsupported elliptic curve %s", k.Curve.Params().Name)
		}
	default:
		return "", fmt.Errorf("unsupported key type %T", key)
	}
}
