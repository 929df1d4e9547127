package service

import (
	"errors"
	"testing"

	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate product failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func TestCreateNormalizesPrice(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.Create(ProductInput{Name: "Classic Jeans", Price: "79.9"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Price != "$79.90" {
		t.Fatalf("expected normalized price $79.90, got %s", product.Price)
	}
	if product.SortOrder != 1 {
		t.Fatalf("expected sort order 1 for first product, got %d", product.SortOrder)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newProductService(t)

	cases := []struct {
		name  string
		input ProductInput
	}{
		{"missing_name", ProductInput{Price: "$79.99"}},
		{"missing_price", ProductInput{Name: "Classic Jeans"}},
		{"garbage_price", ProductInput{Name: "Classic Jeans", Price: "free"}},
		{"zero_price", ProductInput{Name: "Classic Jeans", Price: "$0.00"}},
		{"negative_price", ProductInput{Name: "Classic Jeans", Price: "-$5.00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := newProductService(t)

	if _, err := svc.Update(99, ProductInput{Name: "X", Price: "$1.00"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppliesFields(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(ProductInput{Name: "Classic Jeans", Price: "$79.99"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(created.ID, ProductInput{
		Name:     "Classic Jeans v2",
		Price:    "84.99",
		Featured: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Classic Jeans v2" || updated.Price != "$84.99" || !updated.Featured {
		t.Fatalf("unexpected updated product: %+v", updated)
	}
}

func TestDeleteUnknownProduct(t *testing.T) {
	svc := newProductService(t)

	if err := svc.Delete(123); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRoundTrip(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(ProductInput{Name: "Raw Denim", Price: "$119.99", Featured: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Raw Denim" || got.Price != "$119.99" || !got.Featured {
		t.Fatalf("unexpected product: %+v", got)
	}

	if _, err := svc.Get(created.ID + 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
