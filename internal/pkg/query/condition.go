package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

func paramName(index int) string {
	return fmt.Sprintf("p%d", index)
}

type soundsLikeCondition struct {
	field string
	value string
}

// SoundsLike matches rows whose field has the same Soundex code as value.
// Example: SoundsLike("p.name", "beer") generates "SOUNDEX(p.name) = SOUNDEX(@p0)"
func SoundsLike(field, value string) Condition {
	return &soundsLikeCondition{
		field: field,
		value: value,
	}
}

func (c *soundsLikeCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("SOUNDEX(%s) = SOUNDEX(@%s)", c.field, name), map[string]interface{}{
		name: c.value,
	}
}
