package handlers

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"phonekart-backend/api/middleware"
	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

const tokenTTL = 24 * time.Hour

type UserHandler struct {
	Users     store.UserStore
	JWTSecret []byte
	Log       zerolog.Logger
}

func NewUserHandler(users store.UserStore, jwtSecret []byte, log zerolog.Logger) *UserHandler {
	return &UserHandler{Users: users, JWTSecret: jwtSecret, Log: log}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	} else if err != store.ErrNotFound {
		h.serverError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(c, err)
		return
	}

	id, err := h.Users.Create(c.Request.Context(), &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	})
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id, "email": req.Email})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err == store.ErrNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "email or password is not valid"})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "email or password is not valid"})
		return
	}

	claims := middleware.AuthClaims{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(h.JWTSecret)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": tokenStr,
		"user": gin.H{
			"id":            user.ID.Hex(),
			"firstName":     user.FirstName,
			"lastName":      user.LastName,
			"email":         user.Email,
			"wishListItems": user.WishListItems,
		},
	})
}

// GET /api/users/currentuser
func (h *UserHandler) Current(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("user handler failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
}
