package cachecontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	flushed  bool
	patterns []string
	err      *Error.Status
}

func (r *recorder) FlushAll() *Error.Status {
	r.flushed = r.err == nil
	return r.err
}

func (r *recorder) DeletePattern(pattern string) *Error.Status {
	if r.err == nil {
		r.patterns = append(r.patterns, pattern)
	}
	return r.err
}

func call(h echo.HandlerFunc, entity string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodDelete, "/cache", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	if entity != "" {
		ctx.SetParamNames("entity")
		ctx.SetParamValues(entity)
	}

	return rec, request.Middleware(h)(ctx)
}

func TestDrop(t *testing.T) {
	r := new(recorder)

	rec, err := call(New(r).Drop, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, r.flushed)

	r = &recorder{err: Error.StatusServiceUnavailable}
	_, err = call(New(r).Drop, "")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

func TestDropEntity(t *testing.T) {
	r := new(recorder)
	c := New(r)

	_, err := call(c.DropEntity, "order")
	require.NoError(t, err)
	assert.Equal(t, []string{"order:*"}, r.patterns)

	_, err = call(c.DropEntity, "location")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
