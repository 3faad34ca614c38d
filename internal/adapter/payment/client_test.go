package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreateIntent(t *testing.T) {
	var gotAuth string
	var gotBody intentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(intentResponse{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Amount:       gotBody.Amount,
			Currency:     gotBody.Currency,
		})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	intent, err := client.CreateIntent(context.Background(), 100000, "eur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
	if intent.Amount != 100000 || intent.Currency != "eur" {
		t.Fatalf("amount not echoed: %+v", intent)
	}
	if gotAuth != "Bearer sk_test" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	client, err := NewHTTPClient("http://localhost:9", "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	for _, amount := range []int64{0, -500} {
		if _, err := client.CreateIntent(context.Background(), amount, "eur"); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for amount %d, got %v", amount, err)
		}
	}
}

func TestCreateIntentTooManyRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.CreateIntent(context.Background(), 100, "eur")
	var tooMany TooManyRequestsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if tooMany.RetryAfter != 7*time.Second {
		t.Fatalf("unexpected retry-after %s", tooMany.RetryAfter)
	}
	if !errors.Is(err, domainErrors.ErrExternalService) {
		t.Fatalf("expected external service classification, got %v", err)
	}
}

func TestCreateIntentGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.CreateIntent(context.Background(), 100, "eur"); !errors.Is(err, domainErrors.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestCreateIntentUnreachableGateway(t *testing.T) {
	client, err := NewHTTPClient("http://127.0.0.1:1", "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.CreateIntent(context.Background(), 100, "eur"); !errors.Is(err, domainErrors.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if d := parseRetryAfter(""); d != 5*time.Second {
		t.Fatalf("expected default, got %s", d)
	}
	if d := parseRetryAfter("12"); d != 12*time.Second {
		t.Fatalf("expected 12s, got %s", d)
	}
	if d := parseRetryAfter("garbage"); d != 5*time.Second {
		t.Fatalf("expected default for garbage, got %s", d)
	}
	future := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	if d := parseRetryAfter(future); d <= 0 || d > 30*time.Second {
		t.Fatalf("unexpected duration %s", d)
	}
}
