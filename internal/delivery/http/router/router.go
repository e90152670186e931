// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skyvault/internal/delivery/http/middleware"
	"skyvault/internal/delivery/http/router/handler"
	"skyvault/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ContentHandler *handler.ContentHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AccessHandler  *handler.AccessHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	contentHandler *handler.ContentHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	accessHandler  *handler.AccessHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		contentHandler: params.ContentHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		accessHandler:  params.AccessHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		authGroup.POST("/login", r.userHandler.Login)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me/password", r.userHandler.ChangePassword)
	}

	// Public catalog. Optional auth lets owners and admins see their own
	// unpublished listings through the same routes.
	contentGroup := e.Group("/content")
	contentGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		contentGroup.GET("", r.contentHandler.Search)
		contentGroup.GET("/:id", r.contentHandler.GetDetail)
		contentGroup.GET("/:id/thumbnail", r.accessHandler.Thumbnail)
		contentGroup.GET("/:id/access", r.accessHandler.Check)
		contentGroup.GET("/:id/preview", r.accessHandler.Preview)
		contentGroup.GET("/:id/view", r.accessHandler.ViewAll)
		contentGroup.GET("/:id/download", r.accessHandler.DownloadAll)
		contentGroup.GET("/:id/media/:mediaID/view", r.accessHandler.View)
		contentGroup.GET("/:id/media/:mediaID/download", r.accessHandler.Download)
	}

	// Creator routes for managing listings
	creatorGroup := e.Group("/creator/content")
	creatorGroup.Use(r.authMiddleware.Authenticate)
	creatorGroup.Use(r.authMiddleware.RequireRole(entity.RoleCreator))
	{
		creatorGroup.GET("", r.contentHandler.ListMine)
		creatorGroup.POST("", r.contentHandler.Create)
		creatorGroup.PUT("/:id", r.contentHandler.Update)
		creatorGroup.DELETE("/:id", r.contentHandler.Delete)
		creatorGroup.POST("/:id/media", r.contentHandler.UploadMedia)
		creatorGroup.POST("/:id/thumbnail", r.contentHandler.UploadThumbnail)
		creatorGroup.DELETE("/:id/media/:mediaID", r.contentHandler.RemoveMedia)
	}

	// Cart and checkout, buyers only
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	cartGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:contentID", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/checkout", r.orderHandler.Checkout)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/my", r.orderHandler.ListMine)
		orderGroup.GET("/:id/slip", r.orderHandler.SlipURL)
	}

	receivedGroup := e.Group("/orders/received")
	receivedGroup.Use(r.authMiddleware.Authenticate)
	receivedGroup.Use(r.authMiddleware.RequireRole(entity.RoleCreator))
	{
		receivedGroup.GET("", r.orderHandler.ListReceived)
	}

	decisionGroup := e.Group("/orders")
	decisionGroup.Use(r.authMiddleware.Authenticate)
	decisionGroup.Use(r.authMiddleware.RequireRole(entity.RoleCreator))
	{
		decisionGroup.POST("/:id/approve", r.orderHandler.Approve)
		decisionGroup.POST("/:id/reject", r.orderHandler.Reject)
	}

	// Moderation routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/approval", r.adminHandler.SetApproval)
		adminGroup.DELETE("/creators/:id", r.adminHandler.RejectCreator)
		adminGroup.GET("/content", r.adminHandler.ListContent)
		adminGroup.POST("/content/:id/review", r.adminHandler.ReviewContent)
	}
}
