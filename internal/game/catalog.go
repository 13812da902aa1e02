/*
Package game
File: catalog.go
Description:
    The product catalog: the fixed, ordered list of goods that can be traded.
    Products are immutable after creation and shared by reference between the
    price boards, the ledger and the transaction engine.
*/

package game

import "fmt"

// Product is a tradeable good with the legal bounds of its daily price.
type Product struct {
	Name     string // Unique display name (e.g. "Wine")
	MinPrice int    // Lowest price the good can be traded at
	MaxPrice int    // Highest price the good can be traded at
}

// NewProduct validates and builds a Product.
// An empty name or an inverted price range fails with ErrInvalidProduct.
func NewProduct(name string, minPrice, maxPrice int) (Product, error) {
	if name == "" {
		return Product{}, fmt.Errorf("%w: product name is empty", ErrInvalidProduct)
	}
	if minPrice > maxPrice {
		return Product{}, fmt.Errorf("%w: %s min price %d is bigger than max price %d",
			ErrInvalidProduct, name, minPrice, maxPrice)
	}
	return Product{Name: name, MinPrice: minPrice, MaxPrice: maxPrice}, nil
}

// Catalog is the ordered, read-only product list of one game.
type Catalog struct {
	products []Product
}

// NewCatalog builds a catalog from already-validated products.
func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns the catalog content in its fixed order.
func (c *Catalog) Products() []Product {
	return c.products
}

// ByName finds a product by its name.
func (c *Catalog) ByName(name string) (Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, name)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
