// Package repository defines the persistence interfaces consumed by the use
// case layer, keeping it independent of any specific database driver.
package repository

import "strings"

// SortOrder is the direction of an ORDER BY clause. Only the two enumerated
// values ever reach a query; anything else normalizes to ascending.
type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// ParseSortOrder maps raw client input onto the closed order set.
// Unrecognized input falls back to ascending rather than erroring, keeping
// listings resilient to malformed requests.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(raw, string(OrderDesc)) {
		return OrderDesc
	}

	return OrderAsc
}

// UserSortField enumerates the user columns listings may sort by.
type UserSortField string

const (
	UserSortName    UserSortField = "name"
	UserSortEmail   UserSortField = "email"
	UserSortAddress UserSortField = "address"
	UserSortRole    UserSortField = "role"
)

// ParseUserSortField maps raw client input onto the user sort allow-list,
// falling back to name.
func ParseUserSortField(raw string) UserSortField {
	switch UserSortField(strings.ToLower(raw)) {
	case UserSortName, UserSortEmail, UserSortAddress, UserSortRole:
		return UserSortField(strings.ToLower(raw))
	default:
		return UserSortName
	}
}

// StoreSortField enumerates the store columns listings may sort by. Email
// is only reachable through the admin-facing listing; the user-facing
// variant never offers it.
type StoreSortField string

const (
	StoreSortName    StoreSortField = "name"
	StoreSortEmail   StoreSortField = "email"
	StoreSortAddress StoreSortField = "address"
)

// ParseStoreSortField maps raw client input onto the store sort allow-list,
// falling back to name. When allowEmail is false the email column is
// treated as unrecognized.
func ParseStoreSortField(raw string, allowEmail bool) StoreSortField {
	switch StoreSortField(strings.ToLower(raw)) {
	case StoreSortName, StoreSortAddress:
		return StoreSortField(strings.ToLower(raw))
	case StoreSortEmail:
		if allowEmail {
			return StoreSortEmail
		}

		return StoreSortName
	default:
		return StoreSortName
	}
}
