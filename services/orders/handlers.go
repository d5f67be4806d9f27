package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OrderUseCaseInterface define a interface para o use case
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	EnrichOrder(ctx context.Context, orderID string) (*Order, error)
}

// OrderHandler contém os handlers HTTP
type OrderHandler struct {
	useCase     OrderUseCaseInterface
	tracer      trace.Tracer
	enrichments metric.Int64Counter
}

// NewOrderHandler cria uma nova instância de OrderHandler
func NewOrderHandler(useCase OrderUseCaseInterface, tracer trace.Tracer, meter metric.Meter) *OrderHandler {
	enrichments, err := meter.Int64Counter("orders.enrichment.total",
		metric.WithDescription("Enrichment action invocations by outcome"))
	if err != nil {
		log.Printf("⚠️ Failed to create enrichment counter: %v", err)
	}

	return &OrderHandler{
		useCase:     useCase,
		tracer:      tracer,
		enrichments: enrichments,
	}
}

// CreateOrder cria um pedido, validando o produto referenciado antes da escrita
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("product_id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
	)

	order, err := h.useCase.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	span.SetAttributes(attribute.String("order_id", order.ID))
	c.JSON(http.StatusCreated, order)
}

// GetOrder retorna um pedido pelo ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	ctx, span := h.tracer.Start(c.Request.Context(), "get_order")
	defer span.End()
	span.SetAttributes(attribute.String("order_id", orderID))

	order, err := h.useCase.GetOrder(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// EnrichOrder executa a ação de enriquecimento sobre um pedido existente
// e retorna o pedido relido do banco
func (h *OrderHandler) EnrichOrder(c *gin.Context) {
	orderID := c.Param("id")

	ctx, span := h.tracer.Start(c.Request.Context(), "enrich_order")
	defer span.End()
	span.SetAttributes(attribute.String("order_id", orderID))

	order, err := h.useCase.EnrichOrder(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		h.countEnrichment(ctx, workflowKind(err))
		respondError(c, err)
		return
	}

	h.countEnrichment(ctx, "success")
	c.JSON(http.StatusOK, order)
}

// HealthCheck verifica a saúde do serviço
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-service",
	})
}

func (h *OrderHandler) countEnrichment(ctx context.Context, outcome string) {
	if h.enrichments == nil {
		return
	}
	h.enrichments.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// respondError mapeia a taxonomia de erros do workflow para o status HTTP;
// erros fora da taxonomia são 500
func respondError(c *gin.Context, err error) {
	var wErr *WorkflowError
	if errors.As(err, &wErr) {
		c.JSON(wErr.StatusCode, gin.H{"error": wErr.Message, "code": wErr.Kind})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
