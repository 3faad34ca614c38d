package payment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mkazlauskas/shoplt/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{PaymentAPIAddress: "http://example.com", PaymentAPIKey: "sk_test"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
