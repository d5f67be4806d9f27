package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestResolver(t *testing.T, transport, baseURL string) ProductResolver {
	t.Helper()
	resolver, err := NewProductResolver(transport, baseURL, 2*time.Second)
	assert.NoError(t, err)
	return resolver
}

func TestRestResolver_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/P1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ID": "P1", "name": "Widget", "price": 10}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.NoError(t, err)
	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 10.0, product.Price)
}

func TestRestResolver_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P9")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindProductNotFound))
}

func TestRestResolver_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteProtocol))
}

func TestRestResolver_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteProtocol))
}

func TestRestResolver_NonNumericPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ID": "P1", "name": "Widget", "price": "ten"}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	// Resolver que não garante preço numérico vira erro de protocolo
	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteProtocol))
}

func TestRestResolver_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "rest", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	// Resposta sem ID equivale a produto inexistente no remoto
	assert.Nil(t, product)
	assert.True(t, isKind(err, KindProductNotFound))
}

func TestRestResolver_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	resolver := newTestResolver(t, "rest", baseURL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteUnavailable))
}

func TestRestResolver_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	resolver, err := NewProductResolver("rest", server.URL, 50*time.Millisecond)
	assert.NoError(t, err)

	product, err := resolver.Resolve(context.Background(), "P1")

	// Timeout na chamada remota mapeia para indisponibilidade
	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteUnavailable))
}

func TestODataResolver_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/odata/v4/catalog/Products", r.URL.Path)
		assert.Equal(t, "ID eq 'P1'", r.URL.Query().Get("$filter"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"@odata.context": "$metadata#Products", "value": [{"ID": "P1", "name": "Widget", "price": 10}]}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "odata", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.NoError(t, err)
	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 10.0, product.Price)
}

func TestODataResolver_EmptyResultSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value": []}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "odata", server.URL)

	product, err := resolver.Resolve(context.Background(), "P9")

	// Coleção vazia é resposta afirmativa de inexistência
	assert.Nil(t, product)
	assert.True(t, isKind(err, KindProductNotFound))
}

func TestODataResolver_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value": "oops"}`))
	}))
	defer server.Close()

	resolver := newTestResolver(t, "odata", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteProtocol))
}

func TestODataResolver_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := newTestResolver(t, "odata", server.URL)

	product, err := resolver.Resolve(context.Background(), "P1")

	assert.Nil(t, product)
	assert.True(t, isKind(err, KindRemoteProtocol))
}

func TestNewProductResolver_DefaultsToRest(t *testing.T) {
	resolver, err := NewProductResolver("", "http://localhost:4004", time.Second)

	assert.NoError(t, err)
	assert.IsType(t, &restProductResolver{}, resolver)
}

func TestNewProductResolver_UnknownTransport(t *testing.T) {
	resolver, err := NewProductResolver("grpc", "http://localhost:4004", time.Second)

	assert.Nil(t, resolver)
	assert.EqualError(t, err, "unknown resolver transport: grpc")
}
