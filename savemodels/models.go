/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package savemodels

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// SaveMetadata describes one persisted save artifact. Item- and object-store
// providers attach it next to the payload so saves can be listed and audited
// without decoding the payload itself.
type SaveMetadata struct {
	// Key is the artifact's storage key (file name, object key, or item key).
	Key string `json:"Key" dynamodbav:"Key"`

	// SizeBytes is the payload length as written, after compression.
	SizeBytes int64 `json:"SizeBytes" dynamodbav:"SizeBytes"`

	// ContentType hints at the serialized form, e.g. "application/json".
	ContentType string `json:"ContentType,omitempty" dynamodbav:"ContentType,omitempty"`

	// CreatedAt is the timestamp of the first save of this artifact.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty" dynamodbav:"CreatedAt,omitempty"`

	// UpdatedAt is the timestamp of the most recent save.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

// Touch stamps the metadata for a write happening now, setting CreatedAt on
// first use and always advancing UpdatedAt.
func (m *SaveMetadata) Touch(now time.Time) {
	ts := strfmt.DateTime(now.UTC())
	if m.CreatedAt == nil {
		m.CreatedAt = &ts
	}
	m.UpdatedAt = &ts
}
