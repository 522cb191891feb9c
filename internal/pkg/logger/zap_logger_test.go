package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewZapLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	zl, err := NewZapLogger(ZapConfig{Service: "location-service", Level: "debug", Writer: &buf}, nil)
	require.NoError(t, err)

	id := models.MustParseObjectID("507f1f77bcf86cd799439011")
	zl.Info("location saved", VehicleID(id), EventType(models.LocationCreated))
	require.NoError(t, zl.Close())

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "location saved", lines[0]["message"])
	assert.Equal(t, "location-service", lines[0]["service"])
	assert.Equal(t, "507f1f77bcf86cd799439011", lines[0]["vehicle_id"])
	assert.Equal(t, "LOCATION_CREATED", lines[0]["event_type"])
}

func TestNewZapLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	zl, err := NewZapLogger(ZapConfig{Level: "warn", Writer: &buf}, nil)
	require.NoError(t, err)

	zl.Info("dropped")
	zl.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "location.log")
	zl, err := NewZapLogger(ZapConfig{Level: "info", Type: OutputFile, FilePath: path}, nil)
	require.NoError(t, err)

	zl.Error("store unavailable", Err(errors.New("connection refused")))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "store unavailable")
	assert.Contains(t, string(data), "connection refused")
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	zl, err := NewZapLogger(ZapConfig{Level: "info", Writer: &buf}, nil)
	require.NoError(t, err)

	prev := GetGlobalLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(prev) })

	Warn("gate rejected", String("reason", "registry returned 404"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "registry returned 404", lines[0]["reason"])
}

func TestZapEchoMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		status    int
		wantLevel string
	}{
		{
			name:      "ok",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			status:    http.StatusNoContent,
			wantLevel: "info",
		},
		{
			name:      "client error",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") },
			status:    http.StatusNotFound,
			wantLevel: "warn",
		},
		{
			name:      "server error",
			handler:   func(c echo.Context) error { return errors.New("boom") },
			status:    http.StatusInternalServerError,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl, err := NewZapLogger(ZapConfig{Level: "debug", Writer: &buf}, nil)
			require.NoError(t, err)

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/locations/507f1f77bcf86cd799439011", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, ZapEchoMiddleware(zl)(tt.handler)(c))
			assert.Equal(t, tt.status, rec.Code)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, http.MethodDelete, lines[0]["method"])
			assert.EqualValues(t, tt.status, lines[0]["status"])
		})
	}
}
