package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"botilleria/internal/visitor"
)

// visitorCookie names the opaque token tying a browser to its stores.
const visitorCookie = "botilleria_visitor"

const visitorCookieMaxAge = 180 * 24 * 60 * 60 // seconds

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps))
	router.GET("/categories", listCategoriesHandler(deps))

	scoped := router.Group("/", visitorMiddleware(deps.Visitors))
	scoped.GET("/cart", getCartHandler())
	scoped.POST("/cart/items", addCartItemHandler(deps))
	scoped.PATCH("/cart/items/:id", updateCartItemHandler())
	scoped.DELETE("/cart/items/:id", removeCartItemHandler())
	scoped.DELETE("/cart", clearCartHandler())

	scoped.GET("/auth/login", loginHandler(deps))
	scoped.GET("/auth/session", getSessionHandler())
	scoped.POST("/auth/session", createSessionHandler(deps))
	scoped.DELETE("/auth/session", deleteSessionHandler())

	scoped.POST("/checkout", checkoutHandler())
	scoped.GET("/orders", listOrdersHandler(deps))

	return router
}

const visitorCtxKey = "visitor"

// visitorMiddleware resolves the visitor from the cookie, issuing a
// fresh token when none is present.
func visitorMiddleware(manager *visitor.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || id == "" {
			id, err = manager.NewID()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
				return
			}
			c.SetCookie(visitorCookie, id, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Set(visitorCtxKey, manager.Get(c.Request.Context(), id))
		c.Next()
	}
}

func currentVisitor(c *gin.Context) *visitor.Visitor {
	return c.MustGet(visitorCtxKey).(*visitor.Visitor)
}
