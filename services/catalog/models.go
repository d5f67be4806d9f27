package main

// Product representa um produto do catálogo
// O JSON segue o formato do provedor original (ID maiúsculo, estilo OData)
type Product struct {
	ID    string  `json:"ID"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductRepository define as operações de leitura do catálogo
type ProductRepository interface {
	// GetProduct busca um produto pelo ID; retorna (nil, nil) se não existir
	GetProduct(productID string) (*Product, error)

	// ListProducts lista todos os produtos do catálogo
	ListProducts() ([]Product, error)
}
