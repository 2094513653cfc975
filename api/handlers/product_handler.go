package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

// itemsPerPage is the fixed page size of every paginated catalog listing.
const itemsPerPage = 9

type ProductHandler struct {
	Products store.ProductStore
	Log      zerolog.Logger
}

func NewProductHandler(products store.ProductStore, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{Products: products, Log: log}
}

// pageOf computes the pagination envelope for a 1-based page over total
// matching documents.
func pageOf(page int, total int64) (hasMore bool, itemsLeft int64) {
	end := int64(page) * itemsPerPage
	hasMore = end < total
	itemsLeft = total - end
	if itemsLeft < 0 {
		itemsLeft = 0
	}
	return hasMore, itemsLeft
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GET /api/products/brand/:brand?page=N
func (h *ProductHandler) ByBrand(c *gin.Context) {
	brand := c.Param("brand")
	page := pageParam(c)
	skip := int64(page-1) * itemsPerPage

	products, err := h.Products.FindByBrand(c.Request.Context(), brand, skip, itemsPerPage)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Products not found"})
		return
	}
	total, err := h.Products.CountByBrand(c.Request.Context(), brand)
	if err != nil {
		h.serverError(c, err)
		return
	}

	hasMore, itemsLeft := pageOf(page, total)
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Get products for %s", brand),
		"products":    products,
		"currentPage": page,
		"hasMore":     hasMore,
		"itemsLeft":   itemsLeft,
	})
}

// GET /api/products/model/:brand/:model?page=N
func (h *ProductHandler) ByBrandAndModel(c *gin.Context) {
	brand := c.Param("brand")
	model := c.Param("model")
	page := pageParam(c)
	skip := int64(page-1) * itemsPerPage

	products, err := h.Products.FindByBrandAndModel(c.Request.Context(), brand, model, skip, itemsPerPage)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No products found for brand %s and model %s", brand, model)})
		return
	}
	total, err := h.Products.CountByBrandAndModel(c.Request.Context(), brand, model)
	if err != nil {
		h.serverError(c, err)
		return
	}

	hasMore, itemsLeft := pageOf(page, total)
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Get products for %s %s", brand, model),
		"products":    products,
		"currentPage": page,
		"hasMore":     hasMore,
		"itemsLeft":   itemsLeft,
	})
}

// GET /api/products/product/:productId
func (h *ProductHandler) ByLink(c *gin.Context) {
	productID := c.Param("productId")
	product, err := h.Products.FindByLink(c.Request.Context(), models.ProductLinkFor(productID))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product not found for %s", productID)})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Get product for %s", productID),
		"product": product,
	})
}

// GET /api/products/all-products-ids
func (h *ProductHandler) AllLinkIDs(c *gin.Context) {
	products, err := h.Products.FindAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	links := make([]string, 0, len(products))
	for _, p := range products {
		links = append(links, models.ProductIDFromLink(p.ProductLink))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "fetched product ids successfully",
		"allProductLinks": links,
	})
}

func (h *ProductHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("product handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
