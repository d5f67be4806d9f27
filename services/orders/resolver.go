package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProductResolver abstrai a busca de um produto no catálogo remoto,
// independente do transporte. Erros retornados são sempre WorkflowError
// com kind product_not_found, remote_unavailable ou remote_protocol_error.
// Sem retries e sem cache: retry é responsabilidade do chamador.
type ProductResolver interface {
	Resolve(ctx context.Context, productID string) (*Product, error)
}

// NewProductResolver cria o resolver do transporte configurado
// (rest ou odata), ambos sobre o mesmo catálogo remoto
func NewProductResolver(transport, baseURL string, timeout time.Duration) (ProductResolver, error) {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	switch transport {
	case "rest", "":
		return &restProductResolver{client: client}, nil
	case "odata":
		return &odataProductResolver{client: client}, nil
	default:
		return nil, fmt.Errorf("unknown resolver transport: %s", transport)
	}
}

// restProductResolver busca o produto via GET /products/{id}
type restProductResolver struct {
	client *resty.Client
}

func (r *restProductResolver) Resolve(ctx context.Context, productID string) (*Product, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Get("/products/" + url.PathEscape(productID))
	if err != nil {
		// resty só retorna erro quando não houve resposta (conexão, timeout)
		log.Printf("⚠️ No response from remote service: %v", err)
		return nil, newRemoteUnavailable()
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, newProductNotFound(productID)
	}
	if !resp.IsSuccess() {
		return nil, newRemoteProtocolError(resp.Status())
	}

	var product Product
	if err := json.Unmarshal(resp.Body(), &product); err != nil {
		return nil, newRemoteProtocolError("malformed product payload")
	}
	if product.ID == "" {
		return nil, newProductNotFound(productID)
	}

	return &product, nil
}

// odataProductResolver busca o produto via query na coleção OData do catálogo,
// no formato GET /odata/v4/catalog/Products?$filter=ID eq '{id}'
type odataProductResolver struct {
	client *resty.Client
}

// odataEnvelope é o envelope de coleção OData retornado pelo catálogo
type odataEnvelope struct {
	Value []Product `json:"value"`
}

func (r *odataProductResolver) Resolve(ctx context.Context, productID string) (*Product, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("$filter", fmt.Sprintf("ID eq '%s'", productID)).
		Get("/odata/v4/catalog/Products")
	if err != nil {
		log.Printf("⚠️ No response from remote service: %v", err)
		return nil, newRemoteUnavailable()
	}

	if !resp.IsSuccess() {
		return nil, newRemoteProtocolError(resp.Status())
	}

	var envelope odataEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, newRemoteProtocolError("malformed collection payload")
	}

	// Coleção vazia significa que o catálogo afirma que o produto não existe
	if len(envelope.Value) == 0 {
		return nil, newProductNotFound(productID)
	}

	return &envelope.Value[0], nil
}
