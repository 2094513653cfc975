package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"phonekart-backend/api/middleware"
	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

type CartHandler struct {
	Users    store.UserStore
	Products store.ProductStore
	Log      zerolog.Logger
}

func NewCartHandler(users store.UserStore, products store.ProductStore, log zerolog.Logger) *CartHandler {
	return &CartHandler{Users: users, Products: products, Log: log}
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// cartLine is one joined row of the cart listing. Product stays nil when the
// catalog no longer has the item; the entry itself is kept.
type cartLine struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *models.Product `json:"product"`
}

// POST /api/users/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product or quantity"})
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	items := models.AddCartItem(user.CartItems, req.ProductID, req.Quantity)
	if err := h.Users.SetCartItems(c.Request.Context(), user.ID.Hex(), items); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Product added to cart successfully",
		"cartItems": items,
	})
}

// PUT /api/users/cart
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product or quantity"})
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	items, found := models.SetCartQuantity(user.CartItems, req.ProductID, req.Quantity)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
		return
	}
	if err := h.Users.SetCartItems(c.Request.Context(), user.ID.Hex(), items); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart updated successfully",
		"cartItems": items,
	})
}

// GET /api/users/cart
func (h *CartHandler) List(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	links := make([]string, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		links = append(links, models.ProductLinkFor(item.ProductID))
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

	lines := make([]cartLine, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		line := cartLine{ProductID: item.ProductID, Quantity: item.Quantity}
		if p, ok := byLink[models.ProductLinkFor(item.ProductID)]; ok {
			product := p
			line.Product = &product
		}
		lines = append(lines, line)
	}

	c.JSON(http.StatusOK, gin.H{"cartItems": lines})
}

type removeCartRequest struct {
	ProductID string `json:"productId"`
}

// DELETE /api/users/cart
func (h *CartHandler) Remove(c *gin.Context) {
	var req removeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	items, found := models.RemoveCartItem(user.CartItems, req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
		return
	}
	if err := h.Users.SetCartItems(c.Request.Context(), user.ID.Hex(), items); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Product removed from cart successfully",
		"cartItems": items,
	})
}

// DELETE /api/users/clearcart
func (h *CartHandler) Clear(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	if err := h.Users.SetCartItems(c.Request.Context(), user.ID.Hex(), []models.CartItem{}); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart cleared successfully",
		"cartItems": []models.CartItem{},
	})
}

func (h *CartHandler) loadUser(c *gin.Context) (*models.User, bool) {
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

func (h *CartHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("cart handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
