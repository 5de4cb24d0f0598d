package entity

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota

	// Comparison operators
	Eq       // ==
	Gte      // >=
	Lte      // <=
	Contains // substring match
)

// Filter represents a composable filter over record fields.
// Field is a dot-separated path into the record.
type Filter struct {
	Op       FilterOp
	Field    string
	Value    string
	Children []Filter
}

// All combines filters with And.
func All(filters ...Filter) Filter {
	return Filter{Op: And, Children: filters}
}

// Sort represents a sort directive for record queries.
type Sort struct {
	Field string // Dot-separated path; empty sorts by creation time
	Desc  bool   // Sort descending if true, ascending if false
}
