package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server routes.
type Routes []Route

// ApiHandleFunctions groups the per-resource handler bundles.
type ApiHandleFunctions struct {
	CatalogAPI  CatalogAPI
	CheckoutAPI CheckoutAPI
	SystemAPI   SystemAPI
}

// NewRouter returns a new gin engine with all API routes registered.
// Middleware is applied before route registration so it wraps every route.
func NewRouter(handlers ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.Use(middleware...)
	for _, route := range getRoutes(handlers) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {}

func getRoutes(handlers ApiHandleFunctions) Routes {
	return Routes{
		{
			"ReadRoot",
			http.MethodGet,
			"/",
			handlers.SystemAPI.ReadRoot,
		},
		{
			"TestDatabase",
			http.MethodGet,
			"/test",
			handlers.SystemAPI.TestDatabase,
		},
		{
			"AddProduct",
			http.MethodPost,
			"/api/products",
			handlers.CatalogAPI.AddProduct,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/api/products",
			handlers.CatalogAPI.ListProducts,
		},
		{
			"Checkout",
			http.MethodPost,
			"/api/checkout",
			handlers.CheckoutAPI.Checkout,
		},
	}
}
