package employeecontroller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
	"warehouse/packages/core/employee"
	"warehouse/packages/infrastructure/DB/dbtest"
	"warehouse/packages/infrastructure/manager"
	"warehouse/packages/presentation/api/http/request"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController() *Controller {
	s := dbtest.New()
	return New(manager.NewEmployee(s, s, time.UTC))
}

func call(h echo.HandlerFunc, target string, params map[string]string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	var names, values []string
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	ctx.SetParamNames(names...)
	ctx.SetParamValues(values...)

	return rec, request.Middleware(h)(ctx)
}

func decodeNames(t *testing.T, rec *httptest.ResponseRecorder) []string {
	var employees []employee.Employee
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &employees))

	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}
	return names
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, code, httpErr.Code)
}

func TestGetAll(t *testing.T) {
	rec, err := call(newController().GetAll, "/employees", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Alice", "Bob", "Dave"}, decodeNames(t, rec))
}

func TestGetByID(t *testing.T) {
	c := newController()

	t.Run("wraps employee into data", func(t *testing.T) {
		rec, err := call(c.GetByID, "/employees/x", map[string]string{"id": dbtest.Dave.ID.Hex()})
		require.NoError(t, err)

		var body struct {
			Status string            `json:"status"`
			Data   employee.Employee `json:"data"`
		}
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "OK", body.Status)
		assert.Equal(t, "Dave", body.Data.Name)
		assert.Equal(t, employee.Driver, body.Data.Role)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := call(c.GetByID, "/employees/x", map[string]string{"id": "x"})
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := call(c.GetByID, "/employees/x", map[string]string{"id": "65f0c0ffee0000000000beef"})
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestSearch(t *testing.T) {
	c := newController()

	t.Run("filters by role", func(t *testing.T) {
		filter := url.QueryEscape(`[{"key":"role","value":"Driver","query":"IsEqual"}]`)

		rec, err := call(c.Search, "/employees/search?filter="+filter, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Dave"}, decodeNames(t, rec))
	})

	t.Run("missing filter", func(t *testing.T) {
		_, err := call(c.Search, "/employees/search", nil)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("malformed filter", func(t *testing.T) {
		_, err := call(c.Search, "/employees/search?filter="+url.QueryEscape("[{"), nil)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestWorkingOn(t *testing.T) {
	c := newController()

	t.Run("employees with shift on date", func(t *testing.T) {
		rec, err := call(c.WorkingOn, "/employees/date/2024-03-01", map[string]string{"date": "2024-03-01"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Dave"}, decodeNames(t, rec))
	})

	t.Run("nobody works", func(t *testing.T) {
		rec, err := call(c.WorkingOn, "/employees/date/2024-04-01", map[string]string{"date": "2024-04-01"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"No employee works on 2024-04-01"}`, rec.Body.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := call(c.WorkingOn, "/employees/date/first", map[string]string{"date": "first"})
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestAvailablePickers(t *testing.T) {
	rec, err := call(newController().AvailablePickers, "/employees/pickers/available", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, decodeNames(t, rec))
}
