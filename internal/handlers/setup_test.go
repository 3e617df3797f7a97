package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finanzas/internal/database"
	"finanzas/internal/handlers"
	"finanzas/internal/middleware"
	"finanzas/internal/repositories"

	"github.com/labstack/echo/v4"
)

// testServer wires the API routes against an in-memory store, the same way
// the server entrypoint does.
type testServer struct {
	echo *echo.Echo
	db   *database.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := database.SetupTestDB(t)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Use(middleware.RequestID())

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	transactionHandler := handlers.NewTransactionHandler(transactionRepo, categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	summaryHandler := handlers.NewSummaryHandler(transactionRepo)

	api := e.Group("/api")
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/summary", summaryHandler.GetSummary)

	return &testServer{echo: e, db: db}
}

// request performs an HTTP request against the wired routes and returns the
// response recorder.
func (ts *testServer) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, "")
}

func (ts *testServer) post(path, body string) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, body)
}

func (ts *testServer) put(path, body string) *httptest.ResponseRecorder {
	return ts.request(http.MethodPut, path, body)
}

func (ts *testServer) delete(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodDelete, path, "")
}
