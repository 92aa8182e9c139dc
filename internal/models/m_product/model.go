package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a plain insert. Committing it over an existing key fails
// with AlreadyExists, so an existing row is never overwritten.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.ImageRef,
			data.Price,
		},
	)
}

// DeleteStmt deletes one product by id. Run it inside a read-write
// transaction and check the affected row count.
func (m *Model) DeleteStmt(productID int64) spanner.Statement {
	return spanner.Statement{
		SQL:    "DELETE FROM " + TableName + " WHERE " + ProductID + " = @id",
		Params: map[string]interface{}{"id": productID},
	}
}

// Key returns the primary key for productID.
func (m *Model) Key(productID int64) spanner.Key {
	return spanner.Key{productID}
}
