package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"phonekart-backend/api/middleware"
	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

type ContactHandler struct {
	Contacts store.ContactStore
	Log      zerolog.Logger
}

func NewContactHandler(contacts store.ContactStore, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Log: log}
}

// GET /api/contacts
func (h *ContactHandler) List(c *gin.Context) {
	auth, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return
	}

	contacts, err := h.Contacts.FindByUser(c.Request.Context(), auth.ID)
	if err == store.ErrNotFound {
		contacts = []models.Contact{}
	} else if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "get all contacts", "contacts": contacts})
}

type contactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}

	auth, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(auth.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return
	}

	contact, err := h.Contacts.Create(c.Request.Context(), &models.Contact{
		UserID: ownerID,
		Name:   req.Name,
		Number: req.Number,
	})
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "created new contact", "contact": contact})
}

// GET /api/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	contact, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("get contact for %s", c.Param("id")),
		"contact": contact,
	})
}

// PUT /api/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	if _, ok := h.loadOwned(c); !ok {
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact details"})
		return
	}

	updated, err := h.Contacts.Update(c.Request.Context(), c.Param("id"), req.Name, req.Number)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("update contact for %s", c.Param("id")),
		"contact": updated,
	})
}

// DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	contact, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil && err != store.ErrNotFound {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("delete contact for %s", c.Param("id")),
		"contact": contact,
	})
}

// loadOwned fetches the contact in :id and enforces that the caller owns it.
func (h *ContactHandler) loadOwned(c *gin.Context) (*models.Contact, bool) {
	auth, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return nil, false
	}

	contact, err := h.Contacts.FindByID(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return nil, false
	}
	if err != nil {
		h.serverError(c, err)
		return nil, false
	}

	if contact.UserID.Hex() != auth.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "user doesn't have permission for this contact"})
		return nil, false
	}
	return contact, true
}

func (h *ContactHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("contact handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
