// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keygate/internal/delivery/http/middleware"
	"keygate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/email-verification", r.authHandler.VerifyEmail)
		authGroup.POST("/email-verification/resend", r.authHandler.ResendVerification)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.authHandler.ResetPassword)
	}

	// Routes that require a valid access token
	protectedGroup := e.Group("/auth")
	protectedGroup.Use(r.authMiddleware.Authenticate)
	{
		protectedGroup.GET("/me", r.authHandler.Me)
		protectedGroup.GET("/sessions", r.authHandler.Sessions)
		protectedGroup.DELETE("/sessions", r.authHandler.RevokeAllSessions)
	}

	// OAuth routes
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/github", r.oauthHandler.GitHubLogin)
		oauthGroup.GET("/github/callback", r.oauthHandler.GitHubCallback)
		oauthGroup.GET("/google", r.oauthHandler.GoogleLogin)
		oauthGroup.GET("/google/callback", r.oauthHandler.GoogleCallback)
	}
}
