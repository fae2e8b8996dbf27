package service

import (
	"context"
	"encoding/json"
	"errors"

	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/pkg/paginate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Common service-level errors handlers translate to HTTP statuses.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrBadInput = errors.New("invalid input")
)

// EventPublisher pushes catalog change notifications to connected clients.
// Satisfied by the websocket hub.
type EventPublisher interface {
	Publish(eventType, entityID string)
}

// DTOs for Request validation
type CreateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price" binding:"required"`
	CategoryID  *string `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	CategoryID  *string `json:"category_id"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, actorID *uuid.UUID, req CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context, page, limit int, search string) ([]model.Product, paginate.Metadata, int64, error)
}

type productService struct {
	repo   repository.ProductRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	events EventPublisher
}

// NewProductService wires the product use cases with their collaborators
func NewProductService(repo repository.ProductRepository, audits repository.AuditRepository, txm repository.TransactionManager, events EventPublisher) ProductService {
	return &productService{repo: repo, audits: audits, txm: txm, events: events}
}

// ListProducts fetches one page of the catalog plus the metadata a client
// needs to render pagination controls. The metadata builder rejects a zero
// total by contract, so the empty-catalog case is handled here: zero pages,
// no links either way.
func (s *productService) ListProducts(ctx context.Context, page, limit int, search string) ([]model.Product, paginate.Metadata, int64, error) {
	products, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		return nil, paginate.Metadata{}, 0, err
	}

	meta := paginate.Metadata{CurrentPage: page}
	if total > 0 {
		meta, err = paginate.BuildMetadata(page, limit, int(total))
		if err != nil {
			return nil, paginate.Metadata{}, 0, err
		}
	}

	return products, meta, total, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return product, err
}

func (s *productService) CreateProduct(ctx context.Context, actorID *uuid.UUID, req CreateProductRequest) (*model.Product, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindBySKU(ctx, req.SKU); err == nil {
		return nil, ErrConflict
	}

	product := &model.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, ErrBadInput
		}
		product.CategoryID = &cid
	}

	// product row and audit entry commit together
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, product); err != nil {
			return err
		}
		return s.audits.Record(txCtx, auditEntry(actorID, model.ActionCreateProduct, product))
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish("product.created", product.ID.String())
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, ErrBadInput
		}
		product.CategoryID = &cid
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, product); err != nil {
			return err
		}
		return s.audits.Record(txCtx, auditEntry(actorID, model.ActionUpdateProduct, product))
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish("product.updated", product.ID.String())
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.audits.Record(txCtx, auditEntry(actorID, model.ActionDeleteProduct, product))
	})
	if err != nil {
		return err
	}

	s.events.Publish("product.deleted", id.String())
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, ErrBadInput
	}
	return price, nil
}

func auditEntry(actorID *uuid.UUID, action string, product *model.Product) *model.AuditLog {
	details, err := json.Marshal(map[string]string{
		"sku":   product.SKU,
		"name":  product.Name,
		"price": product.Price.String(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode audit details")
		details = []byte("{}")
	}
	return &model.AuditLog{
		UserID:     actorID,
		Action:     action,
		EntityID:   product.ID.String(),
		EntityName: product.Name,
		Details:    string(details),
	}
}
