/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package provider

import (
	"context"
	"io"
)

// SerializerWithContext adapts a synchronous Serializer to the
// SerializerContext contract. The context is checked before each call; the
// serialization itself runs without suspension, which matches how a
// synchronous serializer participates in a context pipeline.
func SerializerWithContext(s Serializer) SerializerContext {
	return &ctxSerializer{s: s}
}

type ctxSerializer struct {
	s Serializer
}

func (c *ctxSerializer) Serialize(ctx context.Context, w io.Writer, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.s.Serialize(w, v)
}

func (c *ctxSerializer) Deserialize(ctx context.Context, r io.Reader, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.s.Deserialize(r, v)
}
