package main

import (
	"database/sql"
	"errors"
	"fmt"
)

// PostgresProductRepository implementa ProductRepository usando PostgreSQL
type PostgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository cria uma nova instância do repositório
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

// GetProduct busca um produto pelo ID
func (r *PostgresProductRepository) GetProduct(productID string) (*Product, error) {
	var product Product
	err := r.db.QueryRow(`
		SELECT id, name, price FROM products WHERE id = $1
	`, productID).Scan(&product.ID, &product.Name, &product.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &product, nil
}

// ListProducts lista todos os produtos do catálogo
func (r *PostgresProductRepository) ListProducts() ([]Product, error) {
	rows, err := r.db.Query(`SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
