package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/fleetlocation/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantBase    string
		wantTimeout time.Duration
	}{
		{
			name:        "Valid configuration",
			config:      Config{BaseURL: "https://vehicles.example.com", Timeout: 3 * time.Second},
			wantBase:    "https://vehicles.example.com",
			wantTimeout: 3 * time.Second,
		},
		{
			name:        "Trailing slash and default timeout",
			config:      Config{BaseURL: "http://localhost:8081/"},
			wantBase:    "http://localhost:8081",
			wantTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)
			assert.Equal(t, tt.wantBase, client.baseURL)
			assert.Equal(t, tt.wantTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	var gotHeaders nethttp.Header
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotHeaders = r.Header.Clone()
		switch r.URL.Path {
		case "/vehicles/ok":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"licensePlate":"B 1234 XYZ"}`))
		case "/vehicles/bad-json":
			_, _ = w.Write([]byte(`{`))
		default:
			w.WriteHeader(nethttp.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	ctx := requestcontext.WithRequestID(context.Background(), "req-1")

	var out struct {
		LicensePlate string `json:"licensePlate"`
	}
	require.NoError(t, client.GetJSON(ctx, "/vehicles/ok", &out))
	assert.Equal(t, "B 1234 XYZ", out.LicensePlate)
	assert.Equal(t, "secret", gotHeaders.Get(APIKeyHeader))
	assert.Equal(t, "req-1", gotHeaders.Get(RequestIDHeader))

	err := client.GetJSON(ctx, "/vehicles/missing", &out)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, nethttp.StatusNotFound, statusErr.StatusCode)

	err = client.GetJSON(ctx, "/vehicles/bad-json", &out)
	assert.ErrorContains(t, err, "failed to decode response")
}

func TestClient_GetJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	err := client.GetJSON(context.Background(), "/slow", nil)
	assert.ErrorContains(t, err, "request failed")
}
