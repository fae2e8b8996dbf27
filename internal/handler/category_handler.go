package handler

import (
	"net/http"

	"catalog/internal/middleware"
	"catalog/internal/model"
	"catalog/internal/service"
	"catalog/pkg/paginate"
	"catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/categories")
	{
		group.GET("", h.ListCategories)
		group.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateCategory)
	}
}

// ListCategories returns one page of categories with pagination metadata
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20, max 100)"
// @Success      200    {object}  response.Response{data=response.Page}
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	params := paginate.Parse(c)

	categories, meta, total, err := h.categoryService.ListCategories(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		status := statusFromErr(err)
		c.JSON(status, response.Error(status, "Failed to list categories: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paged(http.StatusOK, categories, meta, total))
}

// CreateCategory adds a category
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateCategoryRequest  true  "Create Category Payload"
// @Success      201      {object}  response.Response{data=model.Category}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		status := statusFromErr(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, category))
}
