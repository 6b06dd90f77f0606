package domain

import "strings"

// AllEntities is the entity filter value meaning "no filter".
const AllEntities = "All"

// FilterOptions narrows a transaction list before aggregation.
type FilterOptions struct {
	// Entity keeps only transactions whose receiving entity normalises to
	// the same key. Empty or AllEntities disables the filter.
	Entity string

	// Search keeps transactions where any name field contains the text,
	// case-insensitively. Empty disables the filter.
	Search string
}

// HasEntity reports whether an entity filter is set.
func (f FilterOptions) HasEntity() bool {
	e := strings.TrimSpace(f.Entity)
	return e != "" && !strings.EqualFold(e, AllEntities)
}

// SortField names a sortable transaction column.
type SortField string

// Sortable columns.
const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByPayer       SortField = "payer"
	SortByEntity      SortField = "entity"
	SortByCandidate   SortField = "candidate"
	SortByPosition    SortField = "position"
	SortByDescription SortField = "description"
	SortByFormType    SortField = "form_type"
	SortByID          SortField = "id"
)

// SortFields lists every sortable column.
var SortFields = []SortField{
	SortByDate, SortByAmount, SortByPayer, SortByEntity, SortByCandidate,
	SortByPosition, SortByDescription, SortByFormType, SortByID,
}

// IsValid returns true if the sort field is recognised.
func (f SortField) IsValid() bool {
	for _, s := range SortFields {
		if s == f {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (f SortField) String() string {
	return string(f)
}

// SortOptions orders a filtered transaction list.
type SortOptions struct {
	// Field is the column to sort by. Empty keeps input order.
	Field SortField

	// Descending reverses the order.
	Descending bool
}
