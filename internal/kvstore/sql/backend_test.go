package kvstoresql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/employee-dashboard/internal/dbtest/postgrestest"
	kvstoresql "github.com/openkcm/employee-dashboard/internal/kvstore/sql"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

func TestBackend(t *testing.T) {
	ctx := t.Context()
	pool, _ := postgrestest.Start(t)

	first := kvstoresql.New(pool, "first")
	second := kvstoresql.New(pool, "second")

	_, err := first.Get(ctx, "employee_search_query")
	assert.ErrorIs(t, err, serviceerr.ErrNotFound)

	require.NoError(t, first.Set(ctx, "employee_search_query", "london"))
	require.NoError(t, first.Set(ctx, "employee_search_query", "tokyo"))

	value, err := first.Get(ctx, "employee_search_query")
	require.NoError(t, err)
	assert.Equal(t, "tokyo", value)

	_, err = second.Get(ctx, "employee_search_query")
	assert.ErrorIs(t, err, serviceerr.ErrNotFound, "namespaces are isolated")

	require.NoError(t, first.Delete(ctx, "employee_search_query"))
	_, err = first.Get(ctx, "employee_search_query")
	assert.ErrorIs(t, err, serviceerr.ErrNotFound)
}
