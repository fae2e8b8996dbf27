package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/model"
	"catalog/internal/service"
	"catalog/pkg/paginate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductService returns canned results and records the paging it was asked for.
type stubProductService struct {
	products []model.Product
	meta     paginate.Metadata
	total    int64
	err      error

	gotPage  int
	gotLimit int
}

func (s *stubProductService) ListProducts(_ context.Context, page, limit int, search string) ([]model.Product, paginate.Metadata, int64, error) {
	s.gotPage = page
	s.gotLimit = limit
	return s.products, s.meta, s.total, s.err
}

func (s *stubProductService) GetProduct(context.Context, uuid.UUID) (*model.Product, error) {
	return nil, service.ErrNotFound
}

func (s *stubProductService) CreateProduct(context.Context, *uuid.UUID, service.CreateProductRequest) (*model.Product, error) {
	return nil, service.ErrNotFound
}

func (s *stubProductService) UpdateProduct(context.Context, *uuid.UUID, uuid.UUID, service.UpdateProductRequest) (*model.Product, error) {
	return nil, service.ErrNotFound
}

func (s *stubProductService) DeleteProduct(context.Context, *uuid.UUID, uuid.UUID) error {
	return service.ErrNotFound
}

func listProducts(t *testing.T, svc *stubProductService, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewProductHandler(svc).RegisterRoutes(router.Group(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/products"+query, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListProductsResponseShape(t *testing.T) {
	next := 2
	svc := &stubProductService{
		products: []model.Product{{SKU: "SKU-001"}},
		meta:     paginate.Metadata{CurrentPage: 1, NextPage: &next, NumPages: 2},
		total:    45,
	}

	w := listProducts(t, svc, "?page=1&limit=20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.gotPage)
	assert.Equal(t, 20, svc.gotLimit)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Items    []json.RawMessage `json:"items"`
			Metadata map[string]any    `json:"metadata"`
			Total    int64             `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Len(t, body.Data.Items, 1)
	assert.Equal(t, int64(45), body.Data.Total)

	// next link serialized, previous omitted entirely
	assert.Equal(t, float64(2), body.Data.Metadata["next_page"])
	assert.NotContains(t, body.Data.Metadata, "previous_page")
	assert.Equal(t, float64(2), body.Data.Metadata["num_pages"])
}

func TestListProductsClampsBadParams(t *testing.T) {
	svc := &stubProductService{meta: paginate.Metadata{CurrentPage: 1}}

	w := listProducts(t, svc, "?page=-5&limit=0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.gotPage)
	assert.Equal(t, 20, svc.gotLimit)
}

func TestListProductsMapsInvalidArgumentTo400(t *testing.T) {
	svc := &stubProductService{
		err: fmt.Errorf("listing products: %w", paginate.ErrInvalidArgument),
	}

	w := listProducts(t, svc, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductUnknownIDReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewProductHandler(&stubProductService{}).RegisterRoutes(router.Group(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/products/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
