package m_product

import (
	"math/big"
)

// Data represents a row of the products table. Price is a NUMERIC column.
type Data struct {
	ProductID   int64   `spanner:"product_id"`
	Name        string  `spanner:"name"`
	Description string  `spanner:"description"`
	ImageRef    string  `spanner:"image_ref"`
	Price       big.Rat `spanner:"price"`
}
