package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"phonekart-backend/api/handlers"
	"phonekart-backend/api/middleware"
)

type Handlers struct {
	Users     *handlers.UserHandler
	Products  *handlers.ProductHandler
	Brands    *handlers.BrandHandler
	Carts     *handlers.CartHandler
	Wishlists *handlers.WishlistHandler
	Payments  *handlers.PaymentHandler
	Contacts  *handlers.ContactHandler
}

// NewRouter wires every route. Private routes sit behind the JWT middleware.
func NewRouter(h *Handlers, jwtSecret []byte, corsOrigins []string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics("phonekart-backend"))
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "testing"})
	})

	private := middleware.ValidateToken(jwtSecret)

	users := r.Group("/api/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.GET("/currentuser", private, h.Users.Current)

		users.POST("/cart", private, h.Carts.Add)
		users.PUT("/cart", private, h.Carts.UpdateQuantity)
		users.GET("/cart", private, h.Carts.List)
		users.DELETE("/cart", private, h.Carts.Remove)
		users.DELETE("/clearcart", private, h.Carts.Clear)

		users.POST("/wishlist", private, h.Wishlists.Add)
		users.GET("/wishlist", private, h.Wishlists.List)
		users.DELETE("/wishlist", private, h.Wishlists.Remove)
	}

	products := r.Group("/api/products")
	{
		products.GET("/brand/:brand", h.Products.ByBrand)
		products.GET("/model/:brand/:model", h.Products.ByBrandAndModel)
		products.GET("/product/:productId", h.Products.ByLink)
		products.GET("/all-products-ids", h.Products.AllLinkIDs)
	}

	brands := r.Group("/api/brands")
	{
		brands.GET("", h.Brands.Names)
		brands.GET("/models", h.Brands.NamesWithModels)
	}

	payment := r.Group("/api/payment", private)
	{
		payment.POST("/orders", h.Payments.CreateOrder)
		payment.POST("/verify", h.Payments.Verify)
		payment.POST("/saveorder", h.Payments.SaveOrder)
		payment.GET("/getkey", h.Payments.GetKey)
	}

	contacts := r.Group("/api/contacts", private)
	{
		contacts.GET("", h.Contacts.List)
		contacts.POST("", h.Contacts.Create)
		contacts.GET("/:id", h.Contacts.Get)
		contacts.PUT("/:id", h.Contacts.Update)
		contacts.DELETE("/:id", h.Contacts.Delete)
	}

	return r
}
