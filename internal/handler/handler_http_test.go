package handler_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/domain"
	"linkshortener/internal/handler"
	"linkshortener/internal/handler/mocks"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
	"linkshortener/internal/validation"
)

const cacheControlValue = "public, max-age=300, s-maxage=300, stale-while-revalidate=300, stale-if-error=300"

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockLinkService, *mocks.MockTargetValidator) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := mocks.NewMockLinkService(t)
	val := mocks.NewMockTargetValidator(t)
	h := handler.New(svc, val, logger)
	return h, svc, val
}

func strPtr(s string) *string {
	return &s
}

// CreateLink tests

func TestCreateLink_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("https://example.com/a").Return("https://example.com/a", nil)
	svc.EXPECT().CreateLink(mock.Anything, "https://example.com/a").
		Return(domain.Link{ID: "MTIzNDU2Nzg5", TargetURL: "https://example.com/a"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"targetUrl":"https://example.com/a"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"MTIzNDU2Nzg5","targetUrl":"https://example.com/a"}`, rec.Body.String())
}

func TestCreateLink_MalformedURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("example.com").Return("", validation.ErrMalformedURL)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"targetUrl":"example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The store is never reached: no CreateLink expectation is set.
	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Url Malformed", rec.Body.String())
}

func TestCreateLink_InvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLink_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("https://example.com/a").Return("https://example.com/a", nil)
	svc.EXPECT().CreateLink(mock.Anything, "https://example.com/a").
		Return(domain.Link{}, repository.ErrTimeout)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"targetUrl":"https://example.com/a"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}

// UpdateLink tests

func TestUpdateLink_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("https://example.com/b").Return("https://example.com/b", nil)
	svc.EXPECT().UpdateLink(mock.Anything, "abc", "https://example.com/b").
		Return(domain.Link{ID: "abc", TargetURL: "https://example.com/b"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/abc", strings.NewReader(`{"targetUrl":"https://example.com/b"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.UpdateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"abc","targetUrl":"https://example.com/b"}`, rec.Body.String())
}

func TestUpdateLink_MalformedURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("nope").Return("", validation.ErrMalformedURL)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/abc", strings.NewReader(`{"targetUrl":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.UpdateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Url Malformed", rec.Body.String())
}

func TestUpdateLink_UnknownIDIsInternalError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().NormalizeTargetURL("https://example.com/b").Return("https://example.com/b", nil)
	svc.EXPECT().UpdateLink(mock.Anything, "missing", "https://example.com/b").
		Return(domain.Link{}, errors.New("no rows in result set"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/missing", strings.NewReader(`{"targetUrl":"https://example.com/b"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.UpdateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Redirect tests

func TestRedirect_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ResolveLink(mock.Anything, "abc").Return("https://example.com/a", nil)
	svc.EXPECT().RecordClick(mock.Anything, domain.ClickEvent{
		LinkID:    "abc",
		Referer:   strPtr("https://google.com"),
		UserAgent: strPtr("curl/8.0"),
	}).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	req.Header.Set("Referer", "https://google.com")
	req.Header.Set("User-Agent", "curl/8.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://example.com/a", rec.Header().Get("Location"))
	assert.Equal(t, cacheControlValue, rec.Header().Get("Cache-Control"))
}

func TestRedirect_AbsentHeadersStoredAsNil(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ResolveLink(mock.Anything, "abc").Return("https://example.com/a", nil)
	svc.EXPECT().RecordClick(mock.Anything, domain.ClickEvent{
		LinkID:    "abc",
		Referer:   nil,
		UserAgent: nil,
	}).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}

func TestRedirect_NotFoundWritesNoClick(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ResolveLink(mock.Anything, "missing").Return("", service.ErrLinkNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	// No RecordClick expectation: a failed resolution writes nothing.
	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}

func TestRedirect_ResolveError(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ResolveLink(mock.Anything, "abc").Return("", errors.New("db down"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRedirect_ClickFailureDoesNotChangeResponse(t *testing.T) {
	tests := []struct {
		name     string
		clickErr error
	}{
		{name: "store error", clickErr: errors.New("insert failed")},
		{name: "timeout", clickErr: repository.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t)

			svc.EXPECT().ResolveLink(mock.Anything, "abc").Return("https://example.com/a", nil)
			svc.EXPECT().RecordClick(mock.Anything, mock.Anything).Return(tt.clickErr)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/abc", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/:id")
			c.SetParamNames("id")
			c.SetParamValues("abc")

			err := h.Redirect(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, "https://example.com/a", rec.Header().Get("Location"))
			assert.Equal(t, cacheControlValue, rec.Header().Get("Cache-Control"))
		})
	}
}

// LinkStatistics tests

func TestLinkStatistics_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().LinkStatistics(mock.Anything, "abc").Return([]domain.CountedLinkStatistic{
		{Amount: 1, Referer: nil, UserAgent: nil},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc/statistics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id/statistics")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.LinkStatistics(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"amount":1,"referer":null,"userAgent":null}]`, rec.Body.String())
}

func TestLinkStatistics_EmptyIsNotAnError(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().LinkStatistics(mock.Anything, "abc").
		Return([]domain.CountedLinkStatistic{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc/statistics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id/statistics")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.LinkStatistics(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestLinkStatistics_ServiceError(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().LinkStatistics(mock.Anything, "abc").Return(nil, errors.New("query failed"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc/statistics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:id/statistics")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.LinkStatistics(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Health endpoint test

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Health(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service is healthy", rec.Body.String())
}
