package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"warehouse/packages/common/config"
	"warehouse/packages/infrastructure/DB/dbtest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	raw, err := os.ReadFile("../../../../../warehouse.config.yaml")
	if err != nil {
		panic(err)
	}
	if err := config.InitFromBytes(raw); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func serve(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRoutes(t *testing.T) {
	s := dbtest.New()
	e := Create(s)

	t.Run("employee by id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/employees/"+dbtest.Bob.ID.Hex(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("static routes take precedence over id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/employees/pickers/available", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Bob"`)
		assert.NotContains(t, rec.Body.String(), `"name":"Alice"`)
	})

	t.Run("query errors are rendered by error handler", func(t *testing.T) {
		filter := url.QueryEscape(`[{"key":"salary","value":1,"query":"IsEqual"}]`)

		rec := serve(e, http.MethodGet, "/orders/search?filter="+filter, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Bad Request","message":"Invalid key in filter"}`, rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/locations", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not Found","message":"Not Found"}`, rec.Body.String())
	})

	t.Run("malformed order body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/orders", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Bad Request","message":"Failed to decode request body"}`, rec.Body.String())
	})

	t.Run("create order", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/orders", `[{"name":"Drill","amount":2}]`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orderNumber":4`)
		assert.Contains(t, rec.Body.String(), `"status":"Order placed"`)
		require.Len(t, s.Orders, 4)
	})

	t.Run("cache routes are registered only in debug mode", func(t *testing.T) {
		rec := serve(e, http.MethodDelete, "/cache", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store, max-age=0", rec.Header().Get("Cache-Control"))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `route="/employees/:id"`)
	})
}
