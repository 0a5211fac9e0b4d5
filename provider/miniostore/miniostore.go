/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package miniostore provides a StreamProviderContext backed by any
// S3-compatible object store through the minio client.
package miniostore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/suparena/savefile/errors"
)

// Provider stores one save artifact as a single object. It satisfies
// provider.StreamProviderContext.
type Provider struct {
	client      *minio.Client
	bucket      string
	object      string
	contentType string
}

// NewClient creates a minio client for an S3-compatible endpoint.
func NewClient(endpoint, accessKey, secretKey string, secure bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return client, nil
}

// New constructs a Provider for one object in one bucket.
func New(client *minio.Client, bucket, object string) (*Provider, error) {
	if bucket == "" {
		return nil, errors.NewValidationError("bucket", "must not be empty")
	}
	if object == "" {
		return nil, errors.NewValidationError("object", "must not be empty")
	}
	return &Provider{
		client:      client,
		bucket:      bucket,
		object:      object,
		contentType: "application/octet-stream",
	}, nil
}

// WithContentType sets the content type recorded on written objects.
func (p *Provider) WithContentType(ct string) *Provider {
	p.contentType = ct
	return p
}

func isNotExist(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

// Read opens the object for reading. GetObject defers errors until the first
// read, so the object is stat'ed up front to surface a missing artifact as
// ErrNotFound at open time.
func (p *Provider) Read(ctx context.Context) (io.ReadCloser, error) {
	if _, err := p.client.StatObject(ctx, p.bucket, p.object, minio.StatObjectOptions{}); err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("object %s/%s: %w", p.bucket, p.object, errors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat object %s/%s: %w", p.bucket, p.object, err)
	}
	obj, err := p.client.GetObject(ctx, p.bucket, p.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", p.bucket, p.object, err)
	}
	return obj, nil
}

// Write uploads the full payload as one object with its exact size.
func (p *Provider) Write(ctx context.Context, payload io.Reader, size int64) error {
	_, err := p.client.PutObject(ctx, p.bucket, p.object, payload, size, minio.PutObjectOptions{
		ContentType: p.contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", p.bucket, p.object, err)
	}
	return nil
}

// Exists reports whether the object is present.
func (p *Provider) Exists(ctx context.Context) (bool, error) {
	_, err := p.client.StatObject(ctx, p.bucket, p.object, minio.StatObjectOptions{})
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s/%s: %w", p.bucket, p.object, err)
	}
	return true, nil
}

// Delete removes the object. Removing an absent object is a no-op.
func (p *Provider) Delete(ctx context.Context) error {
	err := p.client.RemoveObject(ctx, p.bucket, p.object, minio.RemoveObjectOptions{})
	if err != nil && !isNotExist(err) {
		return fmt.Errorf("failed to remove object %s/%s: %w", p.bucket, p.object, err)
	}
	return nil
}
