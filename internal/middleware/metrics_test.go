package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func requestsTotal(method, path, status string) float64 {
	return testutil.ToFloat64(httpRequestsTotal.WithLabelValues(method, path, status))
}

func TestMetrics_RecordsSuccessStatus(t *testing.T) {
	e := echo.New()

	handler := Metrics()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/categories")

	before := requestsTotal(http.MethodGet, "/api/categories", "200")
	assert.NoError(t, handler(c))
	after := requestsTotal(http.MethodGet, "/api/categories", "200")

	assert.Equal(t, 1.0, after-before)
}

func TestMetrics_RecordsErrorStatus(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	handler := Metrics()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/transactions/:id")

	before200 := requestsTotal(http.MethodGet, "/api/transactions/:id", "200")
	before404 := requestsTotal(http.MethodGet, "/api/transactions/:id", "404")

	_ = handler(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the failed request counts under its real status
	assert.Equal(t, 1.0, requestsTotal(http.MethodGet, "/api/transactions/:id", "404")-before404)
	assert.Equal(t, 0.0, requestsTotal(http.MethodGet, "/api/transactions/:id", "200")-before200)
}
