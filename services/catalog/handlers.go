package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ProductHandler contém os handlers HTTP do catálogo
type ProductHandler struct {
	repository ProductRepository
}

// NewProductHandler cria uma nova instância de ProductHandler
func NewProductHandler(repository ProductRepository) *ProductHandler {
	return &ProductHandler{
		repository: repository,
	}
}

// GetProduct retorna um produto pela chave, formato GET /products/{id}
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.repository.GetProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %s not found", productID)})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts é o endpoint de coleção estilo OData do catálogo.
// Suporta apenas a forma de filtro emitida pelos consumidores: ID eq '{id}'
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := c.Query("$filter")

	if filter != "" {
		productID, ok := parseIDFilter(filter)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported $filter expression: %s", filter)})
			return
		}

		product, err := h.repository.GetProduct(productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		value := []Product{}
		if product != nil {
			value = append(value, *product)
		}
		c.JSON(http.StatusOK, collectionResponse(value))
		return
	}

	products, err := h.repository.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, collectionResponse(products))
}

// HealthCheck verifica a saúde do serviço
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "catalog-service",
	})
}

// collectionResponse monta o envelope de coleção OData
func collectionResponse(value []Product) gin.H {
	return gin.H{
		"@odata.context": "$metadata#Products",
		"value":          value,
	}
}

// parseIDFilter aceita a única forma de filtro suportada: ID eq '{id}'
// (aspas simples opcionais)
func parseIDFilter(filter string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(filter), " eq ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "ID" {
		return "", false
	}

	productID := strings.Trim(strings.TrimSpace(parts[1]), "'")
	if productID == "" {
		return "", false
	}
	return productID, true
}
