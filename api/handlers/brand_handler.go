package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

type BrandHandler struct {
	Brands store.BrandStore
	Log    zerolog.Logger
}

func NewBrandHandler(brands store.BrandStore, log zerolog.Logger) *BrandHandler {
	return &BrandHandler{Brands: brands, Log: log}
}

// GET /api/brands
func (h *BrandHandler) Names(c *gin.Context) {
	brands, err := h.Brands.FindAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(brands) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No brands found."})
		return
	}

	seen := make(map[string]bool, len(brands))
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		if !seen[b.BrandName] {
			seen[b.BrandName] = true
			names = append(names, b.BrandName)
		}
	}

	c.JSON(http.StatusOK, names)
}

// GET /api/brands/models
//
// One row per model entry per brand document; no deduplication, the source
// data may legitimately repeat pairs.
func (h *BrandHandler) NamesWithModels(c *gin.Context) {
	brands, err := h.Brands.FindAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(brands) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No brands found."})
		return
	}

	pairs := []models.BrandModelPair{}
	for _, b := range brands {
		for _, model := range b.ModelNames {
			pairs = append(pairs, models.BrandModelPair{BrandName: b.BrandName, ModelName: model})
		}
	}

	c.JSON(http.StatusOK, pairs)
}

func (h *BrandHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("brand handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
