package main

import (
	"time"
)

// Order representa um pedido no sistema, com os campos denormalizados
// do produto preenchidos pela validação de criação ou pela ação de enriquecimento
type Order struct {
	ID           string    `json:"id" db:"id"`
	ProductID    string    `json:"product_id,omitempty" db:"product_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	OrderDate    time.Time `json:"order_date" db:"order_date"`
	ProductName  *string   `json:"product_name,omitempty" db:"product_name"`
	ProductPrice *float64  `json:"product_price,omitempty" db:"product_price"`
	TotalAmount  *float64  `json:"total_amount,omitempty" db:"total_amount"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewOrder cria uma nova instância de Order
// orderDate é sempre carimbado com o horário do servidor, nunca vem do cliente
func NewOrder(id, productID string, quantity int) *Order {
	return &Order{
		ID:        id,
		ProductID: productID,
		Quantity:  quantity,
		OrderDate: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ApplyProduct preenche os campos denormalizados do pedido com os dados
// do produto resolvido e o total calculado
func (o *Order) ApplyProduct(product *Product, totalAmount float64) {
	o.ProductName = &product.Name
	o.ProductPrice = &product.Price
	o.TotalAmount = &totalAmount
}

// Product representa um produto do catálogo remoto (somente leitura)
type Product struct {
	ID    string  `json:"ID"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateOrderRequest representa a requisição para criar um pedido
// product_id é opcional; quantity ausente ou zero vale 1
type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=0"`
}
