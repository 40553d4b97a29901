package manager

import (
	"testing"
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeNames(es []*employee.Employee) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func newEmployeeManager(s *store) *Employee {
	return NewEmployee(s, s, time.UTC)
}

func TestEmployeeByID(t *testing.T) {
	m := newEmployeeManager(newStore())

	e, err := m.ByID(bob.ID.Hex())
	require.Nil(t, err)
	assert.Equal(t, "Bob", e.Name)

	_, err = m.ByID("nope")
	assert.Equal(t, Error.InvalidIdentifier, err)

	_, err = m.ByID(" ")
	assert.Equal(t, Error.MissingIdentifier, err)

	_, err = m.ByID("65f0c0ffee0000000000beef")
	assert.Equal(t, Error.StatusNotFound, err)
}

func TestEmployeeSearch(t *testing.T) {
	m := newEmployeeManager(newStore())

	out, err := m.Search(`[{"key":"role","value":"Picker","query":"IsEqual"},{"value":"2024-03-01T13:00:00Z","query":"Available"}]`)
	require.Nil(t, err)
	assert.Equal(t, []string{"Alice"}, employeeNames(out))

	_, err = m.Search(`[{"key":"salary","value":1,"query":"IsEqual"}]`)
	assert.Equal(t, Error.UnknownFilterKey, err)

	_, err = m.Search("")
	assert.Equal(t, Error.InvalidQuery, err)

	s := newStore()
	s.Err = Error.StatusTimeout
	_, err = newEmployeeManager(s).Search(`[{"key":"role","value":"Picker","query":"IsEqual"}]`)
	assert.Equal(t, Error.StatusTimeout, err)
}

func TestWorkingOn(t *testing.T) {
	m := newEmployeeManager(newStore())

	out, err := m.WorkingOn("2024-03-01")
	require.Nil(t, err)
	assert.Equal(t, []string{"Alice", "Dave"}, employeeNames(out))

	out, err = m.WorkingOn("2024-04-01")
	require.Nil(t, err)
	assert.Empty(t, out)

	_, err = m.WorkingOn("March")
	assert.Equal(t, Error.InvalidDate, err)
}

func TestAvailablePickers(t *testing.T) {
	m := newEmployeeManager(newStore())

	// Alice has an open order, Dave isn't a picker
	out, err := m.AvailablePickers()
	require.Nil(t, err)
	assert.Equal(t, []string{"Bob"}, employeeNames(out))
}
