package logger

import (
	"context"
	"testing"

	"github.com/Gunvolt24/dance_center/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := zap.New(core)
	l := &ZapLogger{base: base, sugar: base.Sugar()}

	ctx := ctxmeta.WithSource(ctxmeta.WithRequestID(context.Background(), "rid-1"), ctxmeta.SourceHTTP)
	l.Infof(ctx, "hall created id=%d", 7)
	l.Debugf(context.Background(), "cache hit")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "hall created id=7" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "rid-1" {
		t.Fatalf("request_id field: got %v", got)
	}
	if got := entries[0].ContextMap()["source"]; got != "http" {
		t.Fatalf("source field: got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatalf("request_id must be absent without it in context")
	}
}

func TestNewZapLogger_DevAndProd(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := NewZapLogger(prod)
		if err != nil {
			t.Fatalf("NewZapLogger(%v): %v", prod, err)
		}
		l.Warnf(context.Background(), "warn %s", "ok")
		_ = cleanup()
	}
}
