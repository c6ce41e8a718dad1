// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"crewdesk/internal/delivery/http/middleware"
	"crewdesk/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	EmployeeHandler    *handler.EmployeeHandler
	UserHandler        *handler.UserHandler
	DashboardHandler   *handler.DashboardHandler
	LocationHandler    *handler.LocationHandler
	NewsHandler        *handler.NewsHandler
	TranslationHandler *handler.TranslationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Self-service account routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AccountHandler.Signup)
		authGroup.POST("/verify-otp", r.params.AccountHandler.VerifyOtp)
		authGroup.POST("/login", r.params.AccountHandler.Login)
		authGroup.POST("/logout", r.params.AccountHandler.Logout)
		authGroup.POST("/forgot-password", r.params.AccountHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AccountHandler.ResetPassword)
		authGroup.GET("/me", r.params.AccountHandler.Me, r.params.AuthMiddleware.Authenticate)
	}

	// Everything below requires a valid session cookie.
	authed := r.params.AuthMiddleware.Authenticate

	employeeGroup := e.Group("/employees", authed)
	{
		employeeGroup.GET("", r.params.EmployeeHandler.List)
		employeeGroup.POST("", r.params.EmployeeHandler.Create)
		employeeGroup.GET("/:id", r.params.EmployeeHandler.Get)
		employeeGroup.PUT("/:id", r.params.EmployeeHandler.Update)
		employeeGroup.DELETE("/:id", r.params.EmployeeHandler.Delete)
	}

	userGroup := e.Group("/users", authed)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.POST("", r.params.UserHandler.Create)
		userGroup.POST("/verify-otp", r.params.UserHandler.VerifyOtp)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}

	dashboardGroup := e.Group("/dashboard", authed)
	{
		dashboardGroup.GET("", r.params.DashboardHandler.Index)
		dashboardGroup.POST("/notes", r.params.DashboardHandler.AddNote)
		dashboardGroup.PUT("/notes/:id", r.params.DashboardHandler.UpdateNote)
		dashboardGroup.DELETE("/notes/:id", r.params.DashboardHandler.DeleteNote)
		dashboardGroup.POST("/habits", r.params.DashboardHandler.AddHabit)
		dashboardGroup.POST("/habits/:id/toggle", r.params.DashboardHandler.ToggleHabit)
		dashboardGroup.DELETE("/habits/:id", r.params.DashboardHandler.DeleteHabit)
	}

	locationGroup := e.Group("/locations", authed)
	{
		locationGroup.GET("", r.params.LocationHandler.List)
		locationGroup.POST("", r.params.LocationHandler.Create)
		locationGroup.POST("/import-countries", r.params.LocationHandler.ImportCountries)
		locationGroup.GET("/:id", r.params.LocationHandler.Get)
		locationGroup.PUT("/:id", r.params.LocationHandler.Update)
		locationGroup.DELETE("/:id", r.params.LocationHandler.Delete)
	}

	newsGroup := e.Group("/news", authed)
	{
		newsGroup.GET("", r.params.NewsHandler.Headlines)
		newsGroup.GET("/everything", r.params.NewsHandler.Search)
		newsGroup.GET("/city", r.params.NewsHandler.CityNews)
	}

	translationGroup := e.Group("/api/translation")
	{
		translationGroup.POST("/translate", r.params.TranslationHandler.Translate)
		translationGroup.GET("/languages", r.params.TranslationHandler.Languages)
	}
}
