package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	ImageRef    = "image_ref"
	Price       = "price"
)

// Columns lists every column in insert order.
var Columns = []string{ProductID, Name, Description, ImageRef, Price}
