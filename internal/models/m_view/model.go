package m_view

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_views table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates the first counter row for a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{ProductID, ViewCount},
		[]interface{}{data.ProductID, data.ViewCount},
	)
}

// IncrementStmt bumps an existing counter in place. It affects zero rows when
// the product has never been viewed.
func (m *Model) IncrementStmt(productID int64) spanner.Statement {
	return spanner.Statement{
		SQL: "UPDATE " + TableName + " SET " + ViewCount + " = " + ViewCount + " + 1 " +
			"WHERE " + ProductID + " = @id",
		Params: map[string]interface{}{"id": productID},
	}
}

// DeleteByProductStmt removes the counter for a product, if any.
func (m *Model) DeleteByProductStmt(productID int64) spanner.Statement {
	return spanner.Statement{
		SQL:    "DELETE FROM " + TableName + " WHERE " + ProductID + " = @id",
		Params: map[string]interface{}{"id": productID},
	}
}
