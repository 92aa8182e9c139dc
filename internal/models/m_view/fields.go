package m_view

// Field name constants for the product_views table.
const (
	TableName = "product_views"

	ProductID = "product_id"
	ViewCount = "view_count"
)
