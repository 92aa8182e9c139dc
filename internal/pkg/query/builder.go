package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type ordering struct {
	expr string
	dir  Direction
}

type join struct {
	table string
	alias string
	on    string
}

// Builder constructs SQL SELECT queries for Cloud Spanner.
// Every method returns a new Builder, so a partially built query can be
// shared as a base. Parameter names are generated in condition order.
type Builder struct {
	table        string
	alias        string
	selectCols   []string
	joins        []join
	whereClauses []Condition
	orderings    []ordering
	limitVal     int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		joins:        []join{},
		whereClauses: []Condition{},
		orderings:    []ordering{},
	}
}

// As aliases the FROM table.
func (b *Builder) As(alias string) *Builder {
	nb := b.clone()
	nb.alias = alias
	return nb
}

// Select appends columns or expressions to the SELECT list.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// LeftJoin adds a LEFT JOIN against table, aliased, with the given ON predicate.
func (b *Builder) LeftJoin(table, alias, on string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, join{table: table, alias: alias, on: on})
	return nb
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy appends a sort key. Keys apply in the order they were added.
func (b *Builder) OrderBy(expr string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderings = append(nb.orderings, ordering{expr: expr, dir: direction})
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)
	if b.alias != "" {
		sql.WriteString(" ")
		sql.WriteString(b.alias)
	}

	for _, j := range b.joins {
		fmt.Fprintf(&sql, " LEFT JOIN %s %s ON %s", j.table, j.alias, j.on)
	}

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if len(b.orderings) > 0 {
		sql.WriteString(" ORDER BY ")
		parts := make([]string, 0, len(b.orderings))
		for _, o := range b.orderings {
			if o.dir == Desc {
				parts = append(parts, o.expr+" DESC")
			} else {
				parts = append(parts, o.expr+" ASC")
			}
		}
		sql.WriteString(strings.Join(parts, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		alias:        b.alias,
		selectCols:   make([]string, len(b.selectCols)),
		joins:        make([]join, len(b.joins)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderings:    make([]ordering, len(b.orderings)),
		limitVal:     b.limitVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.joins, b.joins)
	copy(nb.whereClauses, b.whereClauses)
	copy(nb.orderings, b.orderings)
	return nb
}
