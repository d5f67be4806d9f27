package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// OrderUseCase contém a lógica de negócio dos pedidos
type OrderUseCase struct {
	repository       Repository
	resolver         ProductResolver
	strictValidation bool
}

// NewOrderUseCase cria uma nova instância de OrderUseCase
// strictValidation controla se falha de comunicação com o catálogo
// na criação rejeita o pedido (true) ou apenas gera warning (false)
func NewOrderUseCase(
	repository Repository,
	resolver ProductResolver,
	strictValidation bool,
) *OrderUseCase {
	return &OrderUseCase{
		repository:       repository,
		resolver:         resolver,
		strictValidation: strictValidation,
	}
}

// computeTotal calcula o total do pedido: preço × quantidade,
// multiplicação exata em float64, sem política de arredondamento
func computeTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// CreateOrder valida o produto referenciado e cria o pedido.
// Produto inexistente rejeita a criação; catálogo fora do ar não bloqueia
// a criação (a menos de strictValidation), o pedido entra sem enriquecimento.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := NewOrder(uuid.New().String(), req.ProductID, quantity)

	if order.ProductID != "" {
		product, err := uc.resolver.Resolve(ctx, order.ProductID)
		switch {
		case err == nil:
			order.ApplyProduct(product, computeTotal(product.Price, order.Quantity))
		case isKind(err, KindProductNotFound):
			return nil, newInvalidReference(fmt.Sprintf("Product %s does not exist", order.ProductID))
		case uc.strictValidation:
			log.Printf("❌ Rejecting order, could not validate product %s: %v", order.ProductID, err)
			return nil, err
		default:
			log.Printf("⚠️ Could not validate product %s: %v", order.ProductID, err)
		}
	}

	if err := uc.repository.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("✅ Order created: %s", order.ID)
	return order, nil
}

// GetOrder busca um pedido pelo ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := uc.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, newOrderNotFound(orderID)
	}
	return order, nil
}

// EnrichOrder é a ação idempotente de enriquecimento: carrega o pedido,
// resolve o produto referenciado, recalcula o total, persiste os campos
// denormalizados e retorna o pedido relido do banco — o chamador sempre
// observa o que foi efetivamente persistido
func (uc *OrderUseCase) EnrichOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := uc.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, newOrderNotFound(orderID)
	}

	if order.ProductID == "" {
		return nil, newInvalidReference("Order has no productID to enrich")
	}

	product, err := uc.resolver.Resolve(ctx, order.ProductID)
	if err != nil {
		log.Printf("❌ Failed to resolve product %s for order %s: %v", order.ProductID, orderID, err)
		return nil, err
	}

	// Quantidade vem carimbada da criação; valor não-positivo aqui é
	// violação do modelo de dados, não desta ação
	if order.Quantity <= 0 {
		return nil, fmt.Errorf("order %s has invalid quantity %d", orderID, order.Quantity)
	}
	totalAmount := computeTotal(product.Price, order.Quantity)

	if err := uc.repository.UpdateProductData(ctx, orderID, product.Name, product.Price, totalAmount); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	updated, err := uc.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	if updated == nil {
		return nil, newOrderNotFound(orderID)
	}

	log.Printf("✅ Order enriched: %s | Product: %s | Total: %.2f", orderID, product.Name, totalAmount)
	return updated, nil
}
