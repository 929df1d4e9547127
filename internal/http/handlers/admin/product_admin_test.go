package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/provider"
	"github.com/denim-next/internal/repository"
	"github.com/denim-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type productEnvelope struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Data      models.Product `json:"data"`
	Timestamp string         `json:"timestamp"`
}

func setupProductAdminTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:product_admin_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	h := &Handler{Container: &provider.Container{
		ProductRepo:    productRepo,
		ProductService: service.NewProductService(productRepo),
	}}
	return h, db
}

func jsonContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCreateProductNormalizesPrice(t *testing.T) {
	h, db := setupProductAdminTest(t)

	c, w := jsonContext(t, http.MethodPost, "/api/products",
		`{"name":"Classic Straight Jeans","price":"79.9","description":"Everyday straight fit","featured":true}`)

	h.CreateProduct(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp productEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected status success, got %s", resp.Status)
	}
	if resp.Data.Price != "$79.90" {
		t.Fatalf("expected normalized price $79.90, got %s", resp.Data.Price)
	}
	if !resp.Data.Featured {
		t.Fatalf("expected featured product")
	}

	var stored models.Product
	if err := db.First(&stored, resp.Data.ID).Error; err != nil {
		t.Fatalf("load stored product failed: %v", err)
	}
	if stored.SortOrder != 1 {
		t.Fatalf("expected sort_order 1 for first product, got %d", stored.SortOrder)
	}
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	h, _ := setupProductAdminTest(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "missing name", body: `{"price":"79.99"}`},
		{name: "missing price", body: `{"name":"Jeans"}`},
		{name: "garbage price", body: `{"name":"Jeans","price":"not a price"}`},
		{name: "zero price", body: `{"name":"Jeans","price":"0"}`},
	}
	for _, tc := range cases {
		c, w := jsonContext(t, http.MethodPost, "/api/products", tc.body)
		h.CreateProduct(c)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", tc.name, http.StatusBadRequest, w.Code)
		}
		var resp productEnvelope
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal response failed: %v", tc.name, err)
		}
		if resp.Status != "error" || resp.Message == "" {
			t.Fatalf("%s: expected error envelope with message, got %s", tc.name, w.Body.String())
		}
	}
}

func TestUpdateProduct(t *testing.T) {
	h, db := setupProductAdminTest(t)

	product := models.Product{Name: "Skinny Fit Jeans", Price: "$89.99", SortOrder: 1}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	c, w := jsonContext(t, http.MethodPut, "/api/products/1",
		`{"name":"Skinny Fit Jeans","price":"$94.50","description":"Updated fit"}`)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", product.ID)}}

	h.UpdateProduct(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp productEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Price != "$94.50" {
		t.Fatalf("expected price $94.50, got %s", resp.Data.Price)
	}
	if resp.Data.Description != "Updated fit" {
		t.Fatalf("expected updated description, got %s", resp.Data.Description)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	h, _ := setupProductAdminTest(t)

	c, w := jsonContext(t, http.MethodPut, "/api/products/9999",
		`{"name":"Jeans","price":"79.99"}`)
	c.Params = gin.Params{{Key: "id", Value: "9999"}}

	h.UpdateProduct(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp productEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Message != "Product not found" {
		t.Fatalf("expected message Product not found, got %s", resp.Message)
	}
}

func TestDeleteProduct(t *testing.T) {
	h, db := setupProductAdminTest(t)

	product := models.Product{Name: "Raw Selvedge Denim", Price: "$119.99", SortOrder: 1}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	idParam := fmt.Sprintf("%d", product.ID)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/products/"+idParam, nil)
	c.Params = gin.Params{{Key: "id", Value: idParam}}

	h.DeleteProduct(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodDelete, "/api/products/"+idParam, nil)
	c2.Params = gin.Params{{Key: "id", Value: idParam}}

	h.DeleteProduct(c2)

	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected status %d on repeat delete, got %d", http.StatusNotFound, w2.Code)
	}
}
