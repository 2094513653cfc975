package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"phonekart-backend/api/middleware"
	"phonekart-backend/internal/gateway"
	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

type PaymentHandler struct {
	Gateway gateway.OrderCreator
	Orders  store.OrderStore
	Users   store.UserStore
	KeyID   string
	Secret  string
	Log     zerolog.Logger
}

func NewPaymentHandler(gw gateway.OrderCreator, orders store.OrderStore, users store.UserStore, keyID, secret string, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{Gateway: gw, Orders: orders, Users: users, KeyID: keyID, Secret: secret, Log: log}
}

type createOrderRequest struct {
	Amount float64 `json:"amount"`
}

// POST /api/payment/orders
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount"})
		return
	}

	// round, don't truncate: 19.99*100 is 1998.999... in float64
	order, err := h.Gateway.CreateOrder(int64(math.Round(req.Amount*100)), uuid.NewString())
	if err != nil {
		h.Log.Error().Err(err).Msg("gateway order creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something Went Wrong!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// POST /api/payment/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature sent!"})
		return
	}

	if !gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature, h.Secret) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature sent!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Payment verified successfully",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

type saveOrderRequest struct {
	OrderID          string            `json:"orderId"`
	PaymentID        string            `json:"paymentId"`
	TotalAmount      float64           `json:"totalAmount"`
	TotalItems       int               `json:"totalItems"`
	OrderInformation []models.CartItem `json:"orderInformation"`
}

// POST /api/payment/saveorder
//
// Persists the snapshot as posted. Whether /verify was called first is the
// caller's responsibility; the server does not track verified order ids.
func (h *PaymentHandler) SaveOrder(c *gin.Context) {
	var req saveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order details"})
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.TotalAmount <= 0 || req.TotalItems <= 0 || len(req.OrderInformation) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order details"})
		return
	}

	auth, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return
	}
	user, err := h.Users.FindByID(c.Request.Context(), auth.ID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	order, err := h.Orders.Create(c.Request.Context(), &models.Order{
		OrderID:          req.OrderID,
		PaymentID:        req.PaymentID,
		UserEmail:        user.Email,
		TotalAmount:      req.TotalAmount,
		TotalItems:       req.TotalItems,
		OrderInformation: req.OrderInformation,
	})
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GET /api/payment/getkey
func (h *PaymentHandler) GetKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": h.KeyID})
}

func (h *PaymentHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("payment handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
