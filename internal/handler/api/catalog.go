package api

import (
	"net/http"

	reqdto "rent-elegance/internal/handler/dto/request"
	resdto "rent-elegance/internal/handler/dto/response"
	"rent-elegance/internal/handler/httperr"
	"rent-elegance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description Search, filter, sort and paginate the rental catalog
// @Tags catalog
// @Produce json
// @Param search query string false "Free text search over name, brand, description and tags"
// @Param category query string false "Category id"
// @Param condition query []string false "Excellent, Good or Fair" collectionFormat(multi)
// @Param size query []string false "Sizes" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param price_band query []string false "under-1000, 1000-2000, 2000-3000 or above-3000" collectionFormat(multi)
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param available_from query string false "Start date (YYYY-MM-DD)"
// @Param available_to query string false "End date (YYYY-MM-DD)"
// @Param sort query string false "featured, price, name, deposit, rating or newest"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.listProducts(c, "")
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.q.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load product")
		return
	}
	res, err := resdto.FromProduct(p)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode product", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load categories")
		return
	}
	res, err := resdto.FromCategories(categories)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode categories", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.q.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load category")
		return
	}
	res, err := resdto.FromCategory(category)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode category", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List products of a category
// @Description Accepts the same filters as the product list; the category filter is taken from the path
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 404 {object} httperr.Response
// @Router /api/categories/{id}/products [get]
func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	category, err := h.q.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load category")
		return
	}
	h.listProducts(c, category.ID())
}

func (h *CatalogHandler) listProducts(c *gin.Context, categoryID string) {
	var req reqdto.ListProductsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filters, err := req.ToFilters()
	if err != nil {
		abortWithUsecaseError(c, err, "Invalid query parameters")
		return
	}
	if categoryID != "" {
		filters.Category = categoryID
	}

	page, err := h.q.ListProducts(c.Request.Context(), filters)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list products")
		return
	}
	res, err := resdto.FromProductPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode products", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
