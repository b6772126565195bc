package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"botilleria/internal/catalog"
	"botilleria/internal/domain"
	"botilleria/internal/session"
)

// errProcessingOrder is the message the storefront shows when the
// order backend rejects a submission. The visitor retries manually;
// nothing is retried automatically.
const errProcessingOrder = "Hubo un error al procesar tu orden. Por favor, intenta nuevamente."

func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", catalog.CategoryAll)
		query := c.Query("q")
		results := deps.Catalog.Filter(category, query)
		c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
	}
}

func listCategoriesHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": deps.Catalog.Categories()})
	}
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currentVisitor(c).Cart.Snapshot())
	}
}

type addItemRequest struct {
	ProductID string `json:"id" binding:"required"`
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
			return
		}
		product, ok := deps.Catalog.Get(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		v := currentVisitor(c)
		v.Cart.AddItem(product)
		c.JSON(http.StatusOK, v.Cart.Snapshot())
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		v := currentVisitor(c)
		// Out-of-range values clamp and absent ids are ignored, both
		// without error.
		v.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, v.Cart.Snapshot())
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := currentVisitor(c)
		v.Cart.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, v.Cart.Snapshot())
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := currentVisitor(c)
		v.Cart.Clear()
		c.JSON(http.StatusOK, v.Cart.Snapshot())
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, deps.Auth.SignInURL())
	}
}

func getSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currentVisitor(c).Session.State())
	}
}

type createSessionRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

func createSessionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "idToken required"})
			return
		}
		user, err := deps.Auth.VerifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		v := currentVisitor(c)
		v.Session.ApplyIdentity(c.Request.Context(), session.IdentityEvent{User: user})
		c.JSON(http.StatusOK, v.Session.State())
	}
}

func deleteSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := currentVisitor(c)
		v.Session.ApplyIdentity(c.Request.Context(), session.IdentityEvent{})
		c.JSON(http.StatusOK, v.Session.State())
	}
}

func checkoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := currentVisitor(c)
		result, err := v.Checkout.Submit(c.Request.Context())
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "debes iniciar sesión", "login": "/auth/login"})
		case errors.Is(err, domain.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, domain.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "checkout already in flight"})
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": errProcessingOrder})
		default:
			c.JSON(http.StatusCreated, result)
		}
	}
}

func listOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := currentVisitor(c).Session.State()
		if !state.IsAuthenticated || state.User == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "debes iniciar sesión", "login": "/auth/login"})
			return
		}
		orders, err := deps.Orders.ListByEmail(c.Request.Context(), state.User.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"results": orders, "total": len(orders)})
	}
}
