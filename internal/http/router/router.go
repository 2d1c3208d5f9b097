// Package router wires the HTTP handlers into a gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/craftline/backoffice/internal/http/handler"
	"github.com/craftline/backoffice/internal/logger"
)

func init() {
	// Request bodies with unknown fields are rejected rather than ignored.
	binding.EnableDecoderDisallowUnknownFields = true
}

// Handlers collects the per-entity handlers served by the router.
type Handlers struct {
	Clients       *handler.ClientHandler
	Invoices      *handler.InvoiceHandler
	Jobs          *handler.JobHandler
	Organizations *handler.OrganizationHandler
	Products      *handler.ProductHandler
	Projects      *handler.ProjectHandler
}

// New builds the API router. When authMiddleware is nil all routes are open;
// otherwise every route except organization creation requires a valid token,
// so a fresh deployment can bootstrap its first organization.
func New(log zerolog.Logger, h Handlers, authMiddleware gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), logger.Requests(log))

	engine.POST("/organizations", h.Organizations.Create)

	api := engine.Group("/")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}

	api.GET("/clients", h.Clients.List)
	api.GET("/clients/:id", h.Clients.Get)
	api.POST("/clients", h.Clients.Create)
	api.PUT("/clients/:id", h.Clients.Update)
	api.DELETE("/clients/:id", h.Clients.Delete)

	api.GET("/invoices", h.Invoices.List)
	api.GET("/invoices/:id", h.Invoices.Get)
	api.POST("/invoices", h.Invoices.Create)
	api.PUT("/invoices/:id", h.Invoices.Update)
	api.DELETE("/invoices/:id", h.Invoices.Delete)

	api.GET("/jobs", h.Jobs.List)
	api.GET("/jobs/:id", h.Jobs.Get)
	api.POST("/jobs", h.Jobs.Create)
	api.PUT("/jobs/:id", h.Jobs.Update)
	api.DELETE("/jobs/:id", h.Jobs.Delete)

	api.GET("/organizations", h.Organizations.List)
	api.GET("/organizations/:id", h.Organizations.Get)
	api.PUT("/organizations/:id", h.Organizations.Update)
	api.DELETE("/organizations/:id", h.Organizations.Delete)

	api.GET("/products", h.Products.List)
	api.GET("/products/:id", h.Products.Get)
	api.POST("/products", h.Products.Create)
	api.PUT("/products/:id", h.Products.Update)
	api.DELETE("/products/:id", h.Products.Delete)

	api.GET("/projects", h.Projects.List)
	api.GET("/projects/:id", h.Projects.Get)
	api.POST("/projects", h.Projects.Create)
	api.PUT("/projects/:id", h.Projects.Update)
	api.DELETE("/projects/:id", h.Projects.Delete)

	return engine
}
