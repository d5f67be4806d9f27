package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de pedidos
type Repository interface {
	// CreateOrder cria um novo pedido no banco de dados
	CreateOrder(ctx context.Context, order *Order) error

	// GetOrder busca um pedido pelo ID; retorna (nil, nil) se não existir
	GetOrder(ctx context.Context, orderID string) (*Order, error)

	// UpdateProductData atualiza apenas os campos denormalizados do produto
	UpdateProductData(ctx context.Context, orderID, productName string, productPrice, totalAmount float64) error
}

// OrderRepository implementa Repository usando PostgreSQL
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) Repository {
	return &OrderRepository{
		db: db,
	}
}

// CreateOrder cria um novo pedido no banco de dados
func (r *OrderRepository) CreateOrder(ctx context.Context, order *Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, product_id, quantity, order_date, product_name, product_price, total_amount, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, order.ID, order.ProductID, order.Quantity, order.OrderDate,
		order.ProductName, order.ProductPrice, order.TotalAmount, order.UpdatedAt)
	return err
}

// GetOrder busca um pedido pelo ID
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, quantity, order_date, product_name, product_price, total_amount, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.ProductID, &order.Quantity, &order.OrderDate,
		&order.ProductName, &order.ProductPrice, &order.TotalAmount, &order.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateProductData atualiza os campos denormalizados do pedido.
// Escreve só campos derivados, então reexecutar com o mesmo produto
// remoto produz sempre o mesmo resultado (last-writer-wins aceito)
func (r *OrderRepository) UpdateProductData(ctx context.Context, orderID, productName string, productPrice, totalAmount float64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE orders
		SET product_name = $1, product_price = $2, total_amount = $3, updated_at = NOW()
		WHERE id = $4
	`, productName, productPrice, totalAmount, orderID)
	return err
}
