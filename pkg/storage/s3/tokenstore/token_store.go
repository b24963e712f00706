/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenstore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	contentType           = "application/jwt"
	amazonPublicDomainFmt = "https://%s.s3.%s.amazonaws.com"
)

type s3Uploader interface {
	PutObject(
		ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// Store writes signed status list tokens to a public S3 bucket.
type Store struct {
	s3Client s3Uploader
	region   string
	hostName string
}

// NewStore creates an S3 token store. When hostName is set it overrides the
// default Amazon public domain in returned artifact URLs.
func NewStore(s3Uploader s3Uploader, region, hostName string) *Store {
	return &Store{
		s3Client: s3Uploader,
		region:   region,
		hostName: hostName,
	}
}

// Put uploads the token to the bucket and key named by uri and returns the
// public URL of the artifact. The uri must have the form "s3://bucket/key".
func (p *Store) Put(ctx context.Context, uri string, token []byte) (string, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return "", err
	}

	_, err = p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(token),
		Key:         aws.String(key),
		Bucket:      aws.String(bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload status list token: %w", err)
	}

	return p.getTokenURL(bucket, key), nil
}

func (p *Store) getTokenURL(bucket, key string) string {
	hostName := fmt.Sprintf(amazonPublicDomainFmt, bucket, p.region)

	if p.hostName != "" {
		hostName = fmt.Sprintf("https://%s", p.hostName)
	}

	return fmt.Sprintf("%s/%s", hostName, key)
}

func parseS3URI(uri string) (string, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse sink uri: %w", err)
	}

	if u.Scheme != "s3" || u.Host == "" || u.Path == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q, expected s3://bucket/key", uri)
	}

	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
