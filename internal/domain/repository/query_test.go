package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, OrderDesc, ParseSortOrder("DESC"))
	assert.Equal(t, OrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, OrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, OrderAsc, ParseSortOrder(""))
	assert.Equal(t, OrderAsc, ParseSortOrder("sideways"))
}

func TestParseUserSortField(t *testing.T) {
	assert.Equal(t, UserSortEmail, ParseUserSortField("email"))
	assert.Equal(t, UserSortRole, ParseUserSortField("ROLE"))

	// Anything outside the allow-list falls back to name, never an error.
	assert.Equal(t, UserSortName, ParseUserSortField(""))
	assert.Equal(t, UserSortName, ParseUserSortField("foo"))
	assert.Equal(t, UserSortName, ParseUserSortField("password_hash; DROP TABLE users"))
}

func TestParseStoreSortField(t *testing.T) {
	assert.Equal(t, StoreSortAddress, ParseStoreSortField("address", false))
	assert.Equal(t, StoreSortName, ParseStoreSortField("foo", false))

	// Email sorting is an admin-only column.
	assert.Equal(t, StoreSortEmail, ParseStoreSortField("email", true))
	assert.Equal(t, StoreSortName, ParseStoreSortField("email", false))
}
