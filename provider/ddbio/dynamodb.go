/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/savefile/errors"
	"github.com/suparena/savefile/savemodels"
)

// Provider stores one save artifact as a single DynamoDB item: the compressed
// payload in a binary attribute plus a savemodels.SaveMetadata envelope. It
// satisfies provider.StreamProviderContext.
type Provider struct {
	client    *sdk.Client
	tableName string
	saveKey   string
}

// saveItem is the DynamoDB item layout for one artifact. PK and SK carry the
// same value; a save artifact is a single-object key, not a collection.
type saveItem struct {
	PK       string                  `dynamodbav:"PK"`
	SK       string                  `dynamodbav:"SK"`
	Payload  []byte                  `dynamodbav:"Payload"`
	Metadata savemodels.SaveMetadata `dynamodbav:"Metadata"`
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Provider that stores the artifact identified by saveKey in
// the given table.
func New(client *sdk.Client, tableName, saveKey string) (*Provider, error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if saveKey == "" {
		return nil, errors.NewValidationError("saveKey", "must not be empty")
	}
	return &Provider{
		client:    client,
		tableName: tableName,
		saveKey:   saveKey,
	}, nil
}

func (p *Provider) key() map[string]types.AttributeValue {
	pk := "SAVE#" + p.saveKey
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: pk},
	}
}

// Read fetches the artifact item and returns a reader over its payload. A
// missing item fails with ErrNotFound, matching the read contract for absent
// sources.
func (p *Provider) Read(ctx context.Context) (io.ReadCloser, error) {
	out, err := p.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &p.tableName,
		Key:       p.key(),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("save item %q: %w", p.saveKey, errors.ErrNotFound)
	}

	var item saveItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save item: %w", err)
	}
	return io.NopCloser(bytes.NewReader(item.Payload)), nil
}

// Write buffers the payload and stores it with refreshed metadata in a single
// PutItem call, replacing any prior item for this key.
func (p *Provider) Write(ctx context.Context, payload io.Reader, size int64) error {
	data, err := io.ReadAll(payload)
	if err != nil {
		return fmt.Errorf("failed to buffer payload: %w", err)
	}

	meta, err := p.currentMetadata(ctx)
	if err != nil {
		return err
	}
	meta.Key = p.saveKey
	meta.SizeBytes = int64(len(data))
	meta.Touch(time.Now())

	item := saveItem{
		PK:       "SAVE#" + p.saveKey,
		SK:       "SAVE#" + p.saveKey,
		Payload:  data,
		Metadata: meta,
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal save item: %w", err)
	}

	_, err = p.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &p.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// currentMetadata loads the stored metadata so CreatedAt survives rewrites.
// An absent item yields zero metadata.
func (p *Provider) currentMetadata(ctx context.Context) (savemodels.SaveMetadata, error) {
	projection := "Metadata"
	out, err := p.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:            &p.tableName,
		Key:                  p.key(),
		ProjectionExpression: &projection,
	})
	if err != nil {
		return savemodels.SaveMetadata{}, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return savemodels.SaveMetadata{}, nil
	}

	var item saveItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return savemodels.SaveMetadata{}, fmt.Errorf("failed to unmarshal save item: %w", err)
	}
	return item.Metadata, nil
}

// Exists reports whether the artifact item is present.
func (p *Provider) Exists(ctx context.Context) (bool, error) {
	projection := "PK"
	out, err := p.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:            &p.tableName,
		Key:                  p.key(),
		ProjectionExpression: &projection,
	})
	if err != nil {
		return false, fmt.Errorf("GetItem error: %w", err)
	}
	return out.Item != nil, nil
}

// Delete removes the artifact item. DynamoDB's DeleteItem is a no-op for
// missing items, so deletion is naturally idempotent.
func (p *Provider) Delete(ctx context.Context) error {
	_, err := p.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &p.tableName,
		Key:       p.key(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete save item: %w", err)
	}
	return nil
}
