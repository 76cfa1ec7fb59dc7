package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
)

// defaultCacheControl lets intermediaries cache redirects briefly while
// tolerating staleness, bounding store load against the window in which an
// updated target may still serve its old destination.
const defaultCacheControl = "public, max-age=300, s-maxage=300, stale-while-revalidate=300, stale-if-error=300"

type Handler struct {
	links     LinkService
	validator TargetValidator
	logger    *slog.Logger
}

func New(links LinkService, validator TargetValidator, logger *slog.Logger) *Handler {
	return &Handler{
		links:     links,
		validator: validator,
		logger:    logger,
	}
}

// Register wires the route table. The gate guards every write and read
// operation except the redirect itself and the health probe.
func (h *Handler) Register(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.POST("/create", h.CreateLink, gate)
	e.PATCH("/:id", h.UpdateLink, gate)
	e.GET("/:id/statistics", h.LinkStatistics, gate)
	e.GET("/:id", h.Redirect)
	e.GET("/health", h.Health)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Service is healthy")
}

func (h *Handler) CreateLink(c echo.Context) error {
	var body domain.LinkTarget
	if err := c.Bind(&body); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	targetURL, err := h.validator.NormalizeTargetURL(body.TargetURL)
	if err != nil {
		return c.String(http.StatusConflict, "Url Malformed")
	}

	link, err := h.links.CreateLink(c.Request().Context(), targetURL)
	if err != nil {
		h.logger.Error("failed to create link", slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	h.logger.Debug("created new link",
		slog.String("id", link.ID),
		slog.String("target_url", link.TargetURL))
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) UpdateLink(c echo.Context) error {
	id := c.Param("id")

	var body domain.LinkTarget
	if err := c.Bind(&body); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	targetURL, err := h.validator.NormalizeTargetURL(body.TargetURL)
	if err != nil {
		return c.String(http.StatusConflict, "Url Malformed")
	}

	link, err := h.links.UpdateLink(c.Request().Context(), id, targetURL)
	if err != nil {
		h.logger.Error("failed to update link",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	h.logger.Debug("updated link",
		slog.String("id", link.ID),
		slog.String("target_url", link.TargetURL))
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) Redirect(c echo.Context) error {
	id := c.Param("id")

	targetURL, err := h.links.ResolveLink(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.String(http.StatusNotFound, "Not Found")
		}
		h.logger.Error("failed to resolve link",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	h.logger.Debug("redirecting link",
		slog.String("id", id),
		slog.String("target_url", targetURL))

	event := domain.ClickEvent{
		LinkID:    id,
		Referer:   headerValue(c.Request(), "referer"),
		UserAgent: headerValue(c.Request(), "user-agent"),
	}

	// Best effort: the redirect never fails or blocks because analytics
	// storage is slow or down.
	if err := h.links.RecordClick(c.Request().Context(), event); err != nil {
		if errors.Is(err, repository.ErrTimeout) {
			h.logger.Error("saving link click timed out",
				slog.String("id", id),
				slog.String("error", err.Error()))
		} else {
			h.logger.Error("failed to save link click",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
	}

	c.Response().Header().Set("Cache-Control", defaultCacheControl)
	return c.Redirect(http.StatusTemporaryRedirect, targetURL)
}

func (h *Handler) LinkStatistics(c echo.Context) error {
	id := c.Param("id")

	statistics, err := h.links.LinkStatistics(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch link statistics",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, statistics)
}

// headerValue returns the header value, or nil when the header was absent.
func headerValue(req *http.Request, name string) *string {
	values := req.Header.Values(name)
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}
