// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"txtchange/config"
	"txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ListingHandler  *handler.ListingHandler
	InterestHandler *handler.InterestHandler
	SearchHandler   *handler.SearchHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	listingHandler  *handler.ListingHandler
	interestHandler *handler.InterestHandler
	searchHandler   *handler.SearchHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		listingHandler:  params.ListingHandler,
		interestHandler: params.InterestHandler,
		searchHandler:   params.SearchHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/verify", r.accountHandler.Verify)

		// Unverified accounts may finish registration and sign out.
		authGroup.POST("/register/complete", r.accountHandler.CompleteRegistration, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/categories", r.searchHandler.Categories)

	verified := apiV1.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireVerified)
	verified.GET("/me", r.accountHandler.Me)

	listingsGroup := verified.Group("/listings")
	{
		listingsGroup.POST("", r.listingHandler.Create)
		listingsGroup.GET("/mine", r.listingHandler.ListMine)
		listingsGroup.POST("/qr/resolve", r.listingHandler.ResolveShareCode)
		listingsGroup.GET("/:id", r.listingHandler.Get)
		listingsGroup.PATCH("/:id", r.listingHandler.Edit)
		listingsGroup.DELETE("/:id", r.listingHandler.Delete)
		listingsGroup.POST("/:id/confirm", r.listingHandler.Confirm)
		listingsGroup.GET("/:id/qr", r.listingHandler.ShareCode)
		listingsGroup.GET("/:id/contact", r.listingHandler.Contact)
		listingsGroup.POST("/:id/interests", r.interestHandler.Add)
		listingsGroup.DELETE("/:id/interests/:interestId", r.interestHandler.Remove)
	}

	verified.GET("/interests/seller", r.interestHandler.ListSeller)

	savedGroup := verified.Group("/saved")
	{
		savedGroup.GET("", r.listingHandler.ListSaved)
		savedGroup.POST("/:id", r.listingHandler.Save)
		savedGroup.DELETE("/:id", r.listingHandler.Unsave)
	}

	searchGroup := verified.Group("/search")
	{
		searchGroup.GET("", r.searchHandler.Search)
		searchGroup.GET("/category/:category", r.searchHandler.ByCategory)
	}

	verified.GET("/featured", r.searchHandler.Featured)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
