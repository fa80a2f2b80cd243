package viewmodel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/portal-api/internal/model"
)

func tenAppointments() []model.Appointment {
	out := make([]model.Appointment, 10)
	for i := range out {
		out[i] = appt(int64(i), "2025-06-01", fmt.Sprintf("%02d:00:00", 9+i))
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := tenAppointments()

	first := Paginate(items, 4, 1)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, []int64{0, 1, 2, 3}, ids(first.Items))

	last := Paginate(items, 4, 3)
	assert.Equal(t, 3, last.Number)
	assert.Equal(t, []int64{8, 9}, ids(last.Items))
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := tenAppointments()

	below := Paginate(items, 4, 0)
	assert.Equal(t, 1, below.Number)
	assert.Equal(t, []int64{0, 1, 2, 3}, ids(below.Items))

	above := Paginate(items, 4, 4)
	assert.Equal(t, 3, above.Number)
	assert.Equal(t, []int64{8, 9}, ids(above.Items))
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 4, 2)

	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	page := Paginate(tenAppointments(), 0, 1)

	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(tenAppointments()[:8], 4, 2)

	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []int64{4, 5, 6, 7}, ids(page.Items))
}
