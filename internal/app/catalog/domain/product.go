package domain

import "strings"

// Product is a catalog entry. Its identity is caller supplied and immutable.
type Product struct {
	id          int64
	name        string
	description string
	imageRef    string
	price       Price
}

// ValidateName rejects names that are empty or only whitespace.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// NewProduct creates a Product, enforcing the name and price invariants.
// The image reference is expected to have been checked against the blob store already.
func NewProduct(id int64, name, description, imageRef string, price float64) (*Product, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	return &Product{
		id:          id,
		name:        name,
		description: description,
		imageRef:    imageRef,
		price:       p,
	}, nil
}

// ReconstructProduct rebuilds a Product from stored values without validation.
func ReconstructProduct(id int64, name, description, imageRef string, price Price) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		imageRef:    imageRef,
		price:       price,
	}
}

func (p *Product) ID() int64           { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) ImageRef() string    { return p.imageRef }
func (p *Product) Price() Price        { return p.price }
