// Package entities implements the owner-scoped CRUD pipeline shared by every
// entity kind the server exposes. A Kind describes how one kind maps onto its
// table; the generic repository and service are instantiated once per kind so
// the two resource families cannot drift apart.
package entities

import "strings"

// Row is the subset of *sql.Row and *sql.Rows used by Kind scanners.
type Row interface {
	Scan(dest ...any) error
}

// Kind is the schema descriptor for one entity kind.
//
// Columns lists the writable data columns in insert order, owner_id last;
// id and created_at are managed by the database. Values must produce the
// insert arguments in the same order. Scan must read the full select list:
// id, Columns..., created_at.
type Kind[T any, P any] struct {
	Table    string
	Columns  []string
	Values   func(record *T) []any
	Scan     func(row Row, record *T) error
	Owner    func(record *T) (int64, bool)
	SetOwner func(record *T, ownerID int64)

	// PatchColumns returns the columns present in the partial update and
	// their values. Absent fields mean "leave unchanged".
	PatchColumns func(patch *P) ([]string, []any)
}

// SelectColumns returns the full select list for the kind's table.
func (k *Kind[T, P]) SelectColumns() string {
	return "id, " + strings.Join(k.Columns, ", ") + ", created_at"
}
