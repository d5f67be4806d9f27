package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeProductRepository é um catálogo em memória para os testes de handler
type fakeProductRepository struct {
	products map[string]Product
}

func (f *fakeProductRepository) GetProduct(productID string) (*Product, error) {
	product, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeProductRepository) ListProducts() ([]Product, error) {
	products := []Product{}
	for _, product := range f.products {
		products = append(products, product)
	}
	return products, nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := &fakeProductRepository{products: map[string]Product{
		"P1": {ID: "P1", Name: "Widget", Price: 10},
	}}
	handler := NewProductHandler(repo)

	r := gin.New()
	r.GET("/health", handler.HealthCheck)
	r.GET("/products/:id", handler.GetProduct)
	r.GET("/odata/v4/catalog/Products", handler.ListProducts)
	return r
}

func TestGetProduct_Found(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/P1", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var product Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 10.0, product.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/P9", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product P9 not found")
}

func TestListProducts_WithIDFilter(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/odata/v4/catalog/Products?$filter=ID+eq+%27P1%27", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Value []Product `json:"value"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Value, 1)
	assert.Equal(t, "Widget", envelope.Value[0].Name)
}

func TestListProducts_FilterNoMatch(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/odata/v4/catalog/Products?$filter=ID+eq+%27P9%27", nil)

	r.ServeHTTP(w, req)

	// Produto inexistente retorna coleção vazia, não 404
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Value []Product `json:"value"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Value)
}

func TestListProducts_UnsupportedFilter(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/odata/v4/catalog/Products?$filter=price+gt+5", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported $filter expression")
}

func TestParseIDFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		expectedID string
		expectedOK bool
	}{
		{"quoted", "ID eq 'P1'", "P1", true},
		{"unquoted", "ID eq 42", "42", true},
		{"padded", "  ID eq 'P1'  ", "P1", true},
		{"wrong field", "name eq 'Widget'", "", false},
		{"wrong operator", "ID gt 'P1'", "", false},
		{"empty value", "ID eq ''", "", false},
		{"garbage", "whatever", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseIDFilter(tt.filter)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
