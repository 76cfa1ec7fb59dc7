package auth_test

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/sha3"

	"linkshortener/internal/auth"
	"linkshortener/internal/auth/mocks"
	"linkshortener/internal/domain"
)

func hashedKey(apiKey string) string {
	digest := sha3.Sum256([]byte(apiKey))
	return hex.EncodeToString(digest[:])
}

func storedSettings(apiKey string) domain.Settings {
	return domain.Settings{
		ID:                    "DEFUALT_SETTINGS",
		EncryptedGlobalAPIKey: hashedKey(apiKey),
	}
}

func serveGated(t *testing.T, gate *auth.Gate, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.POST("/create", func(c echo.Context) error {
		return c.String(http.StatusOK, "reached")
	}, gate.Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newGate(t *testing.T) (*auth.Gate, *mocks.MockSettingsSource, *mocks.MockCounterRecorder) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	settings := mocks.NewMockSettingsSource(t)
	recorder := mocks.NewMockCounterRecorder(t)
	return auth.NewGate(settings, logger, recorder), settings, recorder
}

func TestGate_CorrectKey(t *testing.T) {
	gate, settings, _ := newGate(t)
	settings.EXPECT().GlobalSettings(mock.Anything).Return(storedSettings("the-secret"), nil)

	req := httptest.NewRequest(http.MethodPost, "/create", nil)
	req.Header.Set("x-api", "the-secret")

	rec := serveGated(t, gate, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reached", rec.Body.String())
}

func TestGate_MissingHeader(t *testing.T) {
	gate, _, recorder := newGate(t)

	// No settings fetch happens for a missing header.
	recorder.EXPECT().RecordCounter("unauthorized_calls_count", float64(1),
		map[string]string{"uri": "/create"}).Return()

	req := httptest.NewRequest(http.MethodPost, "/create", nil)

	rec := serveGated(t, gate, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", rec.Body.String())
}

func TestGate_IncorrectKey(t *testing.T) {
	gate, settings, recorder := newGate(t)
	settings.EXPECT().GlobalSettings(mock.Anything).Return(storedSettings("the-secret"), nil)
	recorder.EXPECT().RecordCounter("unauthorized_calls_count", float64(1),
		map[string]string{"uri": "/create"}).Return()

	req := httptest.NewRequest(http.MethodPost, "/create", nil)
	req.Header.Set("x-api", "wrong-secret")

	rec := serveGated(t, gate, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", rec.Body.String())
}

func TestGate_SettingsFetchFailsClosed(t *testing.T) {
	gate, settings, _ := newGate(t)
	settings.EXPECT().GlobalSettings(mock.Anything).
		Return(domain.Settings{}, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/create", nil)
	req.Header.Set("x-api", "the-secret")

	rec := serveGated(t, gate, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}

func TestGate_CounterLabeledWithRequestURI(t *testing.T) {
	gate, _, recorder := newGate(t)

	var captured map[string]string
	recorder.EXPECT().RecordCounter("unauthorized_calls_count", float64(1), mock.Anything).
		Run(func(_ string, _ float64, labels map[string]string) {
			captured = labels
		}).Return()

	e := echo.New()
	e.GET("/:id/statistics", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, gate.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/abc/statistics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]string{"uri": "/abc/statistics"}, captured)
}
