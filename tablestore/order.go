package tablestore

import (
	"slices"
	"strings"
)

// Direction is a sort direction for an OrderBy clause.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"

	// expectedPartsCount is the expected number of parts in an order option (field:direction).
	expectedPartsCount = 2
)

// OrderBy represents a single ordering option, consisting of a field and a direction.
type OrderBy struct {
	Field     string
	Direction Direction
}

// expr converts the OrderBy into an SQL-compatible clause (e.g. "name asc").
func (o OrderBy) expr() string {
	return o.Field + " " + string(o.Direction)
}

// ParseOrder parses an ordering string (e.g. "name:asc,created_at:desc") into
// a slice of OrderBy. Invalid or disallowed fields and directions are filtered
// out. The allowedFields parameter specifies the fields permitted for ordering.
func ParseOrder(orderString string, allowedFields ...string) []OrderBy {
	if orderString == "" {
		return nil
	}

	var orders []OrderBy
	pairs := strings.SplitSeq(orderString, ",")
	for pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) != expectedPartsCount {
			continue
		}

		field := strings.TrimSpace(parts[0])
		if !slices.Contains(allowedFields, field) {
			continue
		}

		direction := strings.ToLower(strings.TrimSpace(parts[1]))
		if direction != string(Asc) && direction != string(Desc) {
			continue
		}

		orders = append(orders, OrderBy{
			Field:     field,
			Direction: Direction(direction),
		})
	}

	return orders
}
