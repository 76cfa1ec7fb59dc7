package auth

//go:generate mockery

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/sha3"

	"linkshortener/internal/domain"
)

const apiKeyHeader = "x-api"

type SettingsSource interface {
	GlobalSettings(ctx context.Context) (domain.Settings, error)
}

type CounterRecorder interface {
	RecordCounter(name string, value float64, labels map[string]string)
}

// Gate authenticates privileged requests against the provisioned shared
// secret. The secret digest is re-fetched on every request so a rotated key
// takes effect without a restart.
type Gate struct {
	settings SettingsSource
	logger   *slog.Logger
	recorder CounterRecorder
}

func NewGate(settings SettingsSource, logger *slog.Logger, recorder CounterRecorder) *Gate {
	return &Gate{
		settings: settings,
		logger:   logger,
		recorder: recorder,
	}
}

// Middleware rejects requests whose x-api header is absent or whose
// SHA3-256 hex digest differs from the stored reference. A failed settings
// fetch fails closed.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			labels := map[string]string{"uri": c.Request().RequestURI}

			apiKey := c.Request().Header.Get(apiKeyHeader)
			if apiKey == "" {
				g.logger.Error("unauthorized call to api: no key header received")
				g.recorder.RecordCounter("unauthorized_calls_count", 1, labels)
				return c.String(http.StatusUnauthorized, "Unauthorized")
			}

			settings, err := g.settings.GlobalSettings(c.Request().Context())
			if err != nil {
				g.logger.Error("failed to fetch settings", slog.String("error", err.Error()))
				return c.String(http.StatusInternalServerError, "Internal Server Error")
			}

			digest := sha3.Sum256([]byte(apiKey))
			provided := hex.EncodeToString(digest[:])

			if subtle.ConstantTimeCompare([]byte(provided), []byte(settings.EncryptedGlobalAPIKey)) != 1 {
				g.logger.Error("unauthorized call to api: incorrect key supplied")
				g.recorder.RecordCounter("unauthorized_calls_count", 1, labels)
				return c.String(http.StatusUnauthorized, "Unauthorized")
			}

			return next(c)
		}
	}
}
