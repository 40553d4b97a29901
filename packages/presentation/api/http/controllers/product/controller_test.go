package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/product"
	"warehouse/packages/infrastructure/DB/dbtest"
	"warehouse/packages/infrastructure/manager"
	"warehouse/packages/presentation/api/http/request"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(h echo.HandlerFunc, id string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	if id != "" {
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
	}

	return rec, request.Middleware(h)(ctx)
}

func TestProductController(t *testing.T) {
	s := dbtest.New()
	c := New(manager.NewProduct(s))

	t.Run("get all", func(t *testing.T) {
		rec, err := call(c.GetAll, "")
		require.NoError(t, err)

		var products []product.Product
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 2)
	})

	t.Run("get by id", func(t *testing.T) {
		rec, err := call(c.GetByID, dbtest.Tape.ID.Hex())
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)
		assert.Contains(t, rec.Body.String(), `"name":"Tape"`)
	})

	t.Run("store error", func(t *testing.T) {
		failing := dbtest.New()
		failing.Err = Error.StatusServiceUnavailable

		_, err := call(New(manager.NewProduct(failing)).GetAll, "")
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	})
}
