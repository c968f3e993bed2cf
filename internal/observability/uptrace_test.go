package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/pingpong-league/internal/config"
	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

func TestInitUptrace_DisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("InitUptrace error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown error: %v", err)
	}
}

func TestInitUptrace_EmptyDSNDisables(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true, UptraceDSN: "  "}, logging.NewNop())
	if err != nil {
		t.Fatalf("InitUptrace error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown error: %v", err)
	}
}
