package main

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds estáveis da taxonomia de erros do workflow
const (
	KindOrderNotFound     = "order_not_found"
	KindInvalidReference  = "invalid_reference"
	KindProductNotFound   = "product_not_found"
	KindRemoteUnavailable = "remote_unavailable"
	KindRemoteProtocol    = "remote_protocol_error"
)

// WorkflowError é um erro terminal do workflow com kind estável e
// status HTTP equivalente, reportado ao chamador sem retry automático
type WorkflowError struct {
	Kind       string
	StatusCode int
	Message    string
}

func (e *WorkflowError) Error() string {
	return e.Message
}

func newOrderNotFound(orderID string) *WorkflowError {
	return &WorkflowError{
		Kind:       KindOrderNotFound,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("Order %s not found", orderID),
	}
}

func newInvalidReference(message string) *WorkflowError {
	return &WorkflowError{
		Kind:       KindInvalidReference,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func newProductNotFound(productID string) *WorkflowError {
	return &WorkflowError{
		Kind:       KindProductNotFound,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("Product %s not found in remote service", productID),
	}
}

func newRemoteUnavailable() *WorkflowError {
	return &WorkflowError{
		Kind:       KindRemoteUnavailable,
		StatusCode: http.StatusServiceUnavailable,
		Message:    "Remote service unavailable",
	}
}

func newRemoteProtocolError(detail string) *WorkflowError {
	return &WorkflowError{
		Kind:       KindRemoteProtocol,
		StatusCode: http.StatusBadGateway,
		Message:    fmt.Sprintf("Remote service error: %s", detail),
	}
}

// isKind verifica se err carrega o kind informado da taxonomia
func isKind(err error, kind string) bool {
	var wErr *WorkflowError
	return errors.As(err, &wErr) && wErr.Kind == kind
}

// workflowKind retorna o kind do erro, ou "internal_error" para erros de infraestrutura
func workflowKind(err error) string {
	var wErr *WorkflowError
	if errors.As(err, &wErr) {
		return wErr.Kind
	}
	return "internal_error"
}
