package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/eliteprops/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Property  *apiHandler.PropertyHandler
	Plot      *apiHandler.PlotHandler
	Visit     *apiHandler.VisitHandler
	Receipt   *apiHandler.ReceiptHandler
	Client    *apiHandler.ClientHandler
	Content   *apiHandler.ContentHandler
	Settings  *apiHandler.SettingsHandler
	Dashboard *apiHandler.DashboardHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, adminAuth func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public marketing site
	r.GET("/api/v1/properties", handlers.Property.List)
	r.GET("/api/v1/properties/{id}", handlers.Property.Get)
	r.GET("/api/v1/plots", handlers.Plot.List)
	r.GET("/api/v1/plots/{id}", handlers.Plot.Get)
	r.GET("/api/v1/content", handlers.Content.ListPublic)
	r.POST("/api/v1/site-visits", handlers.Visit.Schedule)

	// Auth
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", adminAuth(handlers.Auth.Refresh))
	r.POST("/api/v1/auth/logout", adminAuth(handlers.Auth.Logout))

	// Back office
	r.GET("/api/v1/admin/dashboard", adminAuth(handlers.Dashboard.Overview))

	r.POST("/api/v1/admin/properties", adminAuth(handlers.Property.Create))
	r.PUT("/api/v1/admin/properties/{id}", adminAuth(handlers.Property.Update))
	r.DELETE("/api/v1/admin/properties/{id}", adminAuth(handlers.Property.Delete))

	r.POST("/api/v1/admin/plots", adminAuth(handlers.Plot.Create))
	r.PUT("/api/v1/admin/plots/{id}", adminAuth(handlers.Plot.Update))
	r.DELETE("/api/v1/admin/plots/{id}", adminAuth(handlers.Plot.Delete))

	r.GET("/api/v1/admin/site-visits", adminAuth(handlers.Visit.List))
	r.PATCH("/api/v1/admin/site-visits/{id}/status", adminAuth(handlers.Visit.UpdateStatus))

	r.GET("/api/v1/admin/receipts", adminAuth(handlers.Receipt.List))
	r.POST("/api/v1/admin/receipts", adminAuth(handlers.Receipt.Create))
	r.GET("/api/v1/admin/receipts/{id}", adminAuth(handlers.Receipt.Get))
	r.GET("/api/v1/admin/receipts/{id}/document", adminAuth(handlers.Receipt.Preview))
	r.GET("/api/v1/admin/receipts/{id}/pdf", adminAuth(handlers.Receipt.DownloadPDF))

	r.GET("/api/v1/admin/clients", adminAuth(handlers.Client.List))

	r.GET("/api/v1/admin/content", adminAuth(handlers.Content.ListAll))
	r.POST("/api/v1/admin/content", adminAuth(handlers.Content.Create))
	r.PUT("/api/v1/admin/content/{id}", adminAuth(handlers.Content.Update))
	r.PUT("/api/v1/admin/content/{id}/active", adminAuth(handlers.Content.SetActive))
	r.DELETE("/api/v1/admin/content/{id}", adminAuth(handlers.Content.Delete))

	r.GET("/api/v1/admin/settings/profile", adminAuth(handlers.Settings.GetProfile))
	r.PUT("/api/v1/admin/settings/profile", adminAuth(handlers.Settings.UpdateProfile))
	r.PUT("/api/v1/admin/settings/password", adminAuth(handlers.Settings.UpdatePassword))

	return r
}
