package service

import (
	"context"
	"strings"

	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/pkg/paginate"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context, page, limit int) ([]model.Category, paginate.Metadata, int64, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*model.Category, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		return nil, ErrBadInput
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, ErrConflict
	}

	category := &model.Category{Name: req.Name, Slug: slug}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, page, limit int) ([]model.Category, paginate.Metadata, int64, error) {
	categories, total, err := s.repo.List(ctx, page, limit)
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

	return categories, meta, total, nil
}
