package healthcontroller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"warehouse/packages/infrastructure/DB/dbtest"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	check := func(s *dbtest.Store) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		require.NoError(t, request.Middleware(New(s).Check)(ctx))

		return rec
	}

	t.Run("healthy", func(t *testing.T) {
		rec := check(dbtest.New())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("db unreachable", func(t *testing.T) {
		s := dbtest.New()
		s.PingErr = errors.New("connection refused")

		assert.Equal(t, http.StatusServiceUnavailable, check(s).Code)
	})
}
