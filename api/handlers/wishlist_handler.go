package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"phonekart-backend/api/middleware"
	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

type WishlistHandler struct {
	Users    store.UserStore
	Products store.ProductStore
	Log      zerolog.Logger
}

func NewWishlistHandler(users store.UserStore, products store.ProductStore, log zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{Users: users, Products: products, Log: log}
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

// POST /api/users/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	items, added := models.AddWishListItem(user.WishListItems, req.ProductID)
	if !added {
		c.JSON(http.StatusConflict, gin.H{"message": "Product already in wishlist"})
		return
	}
	if err := h.Users.SetWishListItems(c.Request.Context(), user.ID.Hex(), items); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Product added to wishlist successfully",
		"wishListItems": items,
	})
}

// DELETE /api/users/wishlist
func (h *WishlistHandler) Remove(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	items, removed := models.RemoveWishListItem(user.WishListItems, req.ProductID)
	if !removed {
		// kept as a 400 rather than 404, unlike the cart
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product not found in wishlist"})
		return
	}
	if err := h.Users.SetWishListItems(c.Request.Context(), user.ID.Hex(), items); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Product removed from wishlist successfully",
		"wishListItems": items,
	})
}

// GET /api/users/wishlist
//
// Only ids still present in the catalog are returned; stale ids are dropped
// from the response (the cart listing keeps them instead).
func (h *WishlistHandler) List(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	links := make([]string, 0, len(user.WishListItems))
	for _, id := range user.WishListItems {
		links = append(links, models.ProductLinkFor(id))
	}

	products, err := h.Products.FindByLinks(c.Request.Context(), links)
	if err != nil {
		h.serverError(c, err)
		return
	}
	byLink := make(map[string]models.Product, len(products))
	for _, p := range products {
		byLink[p.ProductLink] = p
	}

	matched := make([]models.Product, 0, len(user.WishListItems))
	for _, id := range user.WishListItems {
		if p, ok := byLink[models.ProductLinkFor(id)]; ok {
			matched = append(matched, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"wishListItems": matched})
}

func (h *WishlistHandler) loadUser(c *gin.Context) (*models.User, bool) {
	auth, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return nil, false
	}
	user, err := h.Users.FindByID(c.Request.Context(), auth.ID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return nil, false
	}
	if err != nil {
		h.serverError(c, err)
		return nil, false
	}
	return user, true
}

func (h *WishlistHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("wishlist handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
