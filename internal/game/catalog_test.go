package game

import (
	"errors"
	"testing"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Wine", 10, 30)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	if p.Name != "Wine" || p.MinPrice != 10 || p.MaxPrice != 30 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestNewProductEmptyName(t *testing.T) {
	if _, err := NewProduct("", 10, 30); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct, got %v", err)
	}
}

func TestNewProductInvertedPriceRange(t *testing.T) {
	if _, err := NewProduct("Wine", 30, 10); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct, got %v", err)
	}
}

func TestNewProductEqualBoundsAllowed(t *testing.T) {
	if _, err := NewProduct("Flour", 5, 5); err != nil {
		t.Fatalf("equal price bounds should be legal: %v", err)
	}
}

func TestCatalogByName(t *testing.T) {
	catalog := testCatalog(t)

	p, err := catalog.ByName("Olives")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if p.MinPrice != 5 || p.MaxPrice != 20 {
		t.Fatalf("wrong product returned: %+v", p)
	}

	if _, err := catalog.ByName("Silk"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}
}

func TestCatalogKeepsOrder(t *testing.T) {
	catalog := testCatalog(t)
	want := []string{"Wine", "Olives", "Flour"}
	for i, p := range catalog.Products() {
		if p.Name != want[i] {
			t.Fatalf("product %d = %s, want %s", i, p.Name, want[i])
		}
	}
}

// testCatalog is the catalog of the spec'd trading scenarios.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	wine, err := NewProduct("Wine", 10, 30)
	if err != nil {
		t.Fatal(err)
	}
	olives, err := NewProduct("Olives", 5, 20)
	if err != nil {
		t.Fatal(err)
	}
	flour, err := NewProduct("Flour", 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	return NewCatalog(wine, olives, flour)
}
