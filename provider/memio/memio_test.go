/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	saverr "github.com/suparena/savefile/errors"
)

func TestWriteCommitsOnClose(t *testing.T) {
	p := New()

	w, err := p.Write()
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := w.Write([]byte("partial")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Nothing is visible until Close commits.
	if exists, _ := p.Exists(); exists {
		t.Fatal("artifact must not exist before the writer closes")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if got := p.Bytes(); string(got) != "partial" {
		t.Fatalf("unexpected committed bytes %q", got)
	}
}

func TestReadMissingArtifact(t *testing.T) {
	p := New()

	_, err := p.Read()
	if err == nil {
		t.Fatal("Read of missing artifact should fail")
	}
	if !saverr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFaultInjection(t *testing.T) {
	boom := errors.New("boom")
	p := New().WithReadError(boom).WithWriteError(boom).WithExistsError(boom).WithDeleteError(boom)

	if _, err := p.Read(); !errors.Is(err, boom) {
		t.Fatalf("Read: expected injected error, got %v", err)
	}
	if _, err := p.Write(); !errors.Is(err, boom) {
		t.Fatalf("Write: expected injected error, got %v", err)
	}
	if _, err := p.Exists(); !errors.Is(err, boom) {
		t.Fatalf("Exists: expected injected error, got %v", err)
	}
	if err := p.Delete(); !errors.Is(err, boom) {
		t.Fatalf("Delete: expected injected error, got %v", err)
	}
}

func TestContextProviderSharesStorage(t *testing.T) {
	p := New()
	cp := WrapContext(p)
	ctx := context.Background()

	payload := []byte("shared")
	if err := cp.Write(ctx, bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("context Write failed: %v", err)
	}

	r, err := p.Read()
	if err != nil {
		t.Fatalf("sync Read failed: %v", err)
	}
	got, _ := io.ReadAll(r)
	r.Close()
	if string(got) != "shared" {
		t.Fatalf("unexpected bytes %q", got)
	}
}

func TestContextProviderSizeMismatch(t *testing.T) {
	cp := NewContext()

	err := cp.Write(context.Background(), bytes.NewReader([]byte("abc")), 99)
	if err == nil {
		t.Fatal("size mismatch should fail")
	}
}

func TestContextProviderHonorsCancellation(t *testing.T) {
	cp := NewContext()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cp.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := cp.Delete(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	p := New()

	if err := p.Delete(); err != nil {
		t.Fatalf("Delete of missing artifact failed: %v", err)
	}
	p.SetBytes([]byte("x"))
	if err := p.Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if exists, _ := p.Exists(); exists {
		t.Fatal("artifact should be gone")
	}
	if err := p.Delete(); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
}
