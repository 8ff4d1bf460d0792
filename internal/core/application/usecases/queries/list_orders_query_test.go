package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewListOrdersQuery("alice", order.Shipped, 2, 25)

	require.NoError(t, err)
	assert.Equal(t, "alice", query.BuyerID())
	assert.Equal(t, order.Shipped, query.Status())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.Size())
	assert.NoError(t, query.Validate())
}

func TestNewListOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery("alice", "", 1, 10)

	require.NoError(t, err)
	assert.Equal(t, order.Status(""), query.Status())
}

func TestNewListOrdersQuery_Invalid(t *testing.T) {
	_, err := queries.NewListOrdersQuery("", "", 1, 10)
	assert.ErrorIs(t, err, queries.ErrBuyerIDIsRequired)

	_, err = queries.NewListOrdersQuery("alice", "delivering", 1, 10)
	assert.Error(t, err)

	_, err = queries.NewListOrdersQuery("alice", "", 0, 10)
	assert.ErrorIs(t, err, queries.ErrPageIsInvalid)

	_, err = queries.NewListOrdersQuery("alice", "", 1, 0)
	assert.ErrorIs(t, err, queries.ErrSizeIsInvalid)
}

func TestListOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	var query queries.ListOrdersQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
