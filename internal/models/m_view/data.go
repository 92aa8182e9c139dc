package m_view

// Data represents a row of the product_views table.
type Data struct {
	ProductID int64 `spanner:"product_id"`
	ViewCount int64 `spanner:"view_count"`
}
