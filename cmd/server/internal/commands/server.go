package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/craftline/backoffice/internal/auth"
	"github.com/craftline/backoffice/internal/http/handler"
	"github.com/craftline/backoffice/internal/http/router"
	"github.com/craftline/backoffice/internal/logger"
	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/service"
	"github.com/craftline/backoffice/internal/store"
	memorystore "github.com/craftline/backoffice/internal/store/memory"
	postgresstore "github.com/craftline/backoffice/internal/store/postgres"
)

type ServerCmd struct {
	Listen string `help:"HTTP server listen address" default:"0.0.0.0:8080" env:"BACKOFFICE_LISTEN"`

	// Authentication configuration
	NoAuth             bool   `help:"disable authentication for API endpoints (development only)" default:"false" env:"BACKOFFICE_NO_AUTH"`
	TokenSigningSecret string `help:"secret key for HMAC verification of bearer tokens" env:"BACKOFFICE_TOKEN_SECRET"`

	// Store configuration
	StoreType     string             `help:"store type (memory or postgres)" default:"memory" env:"BACKOFFICE_STORE_TYPE" enum:"memory,postgres"`
	PostgresStore PostgresStoreFlags `embed:"" prefix:"postgres-"`
}

type PostgresStoreFlags struct {
	ConnString string `help:"PostgreSQL connection string" env:"POSTGRES_CONNECTION_STRING"`

	// Connection pool configuration
	MaxConns        int32 `help:"maximum number of connections in pool" default:"20"`
	MinConns        int32 `help:"minimum number of connections in pool" default:"5"`
	MaxConnLifetime int32 `help:"maximum connection lifetime in seconds" default:"3600"`
	MaxConnIdleTime int32 `help:"maximum connection idle time in seconds" default:"1800"`

	AutoMigrate bool `help:"run database migrations on startup" default:"false" env:"BACKOFFICE_POSTGRES_AUTO_MIGRATE"`
}

func (c *ServerCmd) Validate() error {
	if c.StoreType == "postgres" && c.PostgresStore.ConnString == "" {
		return errors.New("PostgreSQL connection string is required (--postgres-conn-string or POSTGRES_CONNECTION_STRING)")
	}
	if !c.NoAuth && c.TokenSigningSecret == "" {
		return errors.New("token signing secret is required unless --no-auth is set (--token-signing-secret or BACKOFFICE_TOKEN_SECRET)")
	}
	return nil
}

// stores groups one store per entity so both backends build the same shape.
type stores struct {
	clients       store.EntityStore[models.Client, *models.Client]
	invoices      store.EntityStore[models.Invoice, *models.Invoice]
	jobs          store.EntityStore[models.Job, *models.Job]
	organizations store.EntityStore[models.Organization, *models.Organization]
	products      store.EntityStore[models.Product, *models.Product]
	projects      store.EntityStore[models.Project, *models.Project]
}

func (c *ServerCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting server")

	var st stores

	switch c.StoreType {
	case "postgres":
		poolCfg := &postgresstore.PoolConfig{
			ConnString:      c.PostgresStore.ConnString,
			MaxConns:        c.PostgresStore.MaxConns,
			MinConns:        c.PostgresStore.MinConns,
			MaxConnLifetime: c.PostgresStore.MaxConnLifetime,
			MaxConnIdleTime: c.PostgresStore.MaxConnIdleTime,
		}
		pool, err := postgresstore.NewPool(ctx, poolCfg)
		if err != nil {
			return fmt.Errorf("failed to create connection pool: %w", err)
		}
		defer pool.Close()

		if c.PostgresStore.AutoMigrate {
			if err := postgresstore.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info().Msg("Database migrations completed")
		}

		st = stores{
			clients:       postgresstore.NewClientStore(pool),
			invoices:      postgresstore.NewInvoiceStore(pool),
			jobs:          postgresstore.NewJobStore(pool),
			organizations: postgresstore.NewOrganizationStore(pool),
			products:      postgresstore.NewProductStore(pool),
			projects:      postgresstore.NewProjectStore(pool),
		}

		log.Info().Msg("Using PostgreSQL stores with shared connection pool")

	default:
		st = stores{
			clients:       memorystore.New[models.Client](),
			invoices:      memorystore.New[models.Invoice](),
			jobs:          memorystore.New[models.Job](),
			organizations: memorystore.New[models.Organization](),
			products:      memorystore.New[models.Product](),
			projects:      memorystore.New[models.Project](),
		}

		log.Info().Msg("Using in-memory stores")
	}

	var authMiddleware gin.HandlerFunc
	if c.NoAuth {
		log.Warn().Msg("Authentication is DISABLED - do not use in production")
	} else {
		verifier, err := auth.NewVerifier(c.TokenSigningSecret)
		if err != nil {
			return fmt.Errorf("failed to create token verifier: %w", err)
		}
		authMiddleware = verifier.Middleware()
	}

	if !globals.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := router.Handlers{
		Clients: handler.NewClientHandler(service.NewLifecycle[models.Client](
			service.Descriptor{Name: "client", UniqueKey: "name"}, st.clients)),
		Invoices: handler.NewInvoiceHandler(service.NewLifecycle[models.Invoice](
			service.Descriptor{Name: "invoice", UniqueKey: "invoiceName"}, st.invoices)),
		Jobs: handler.NewJobHandler(service.NewLifecycle[models.Job](
			service.Descriptor{Name: "job", UniqueKey: "title"}, st.jobs)),
		Organizations: handler.NewOrganizationHandler(service.NewLifecycle[models.Organization](
			service.Descriptor{Name: "organization", UniqueKey: "name"}, st.organizations)),
		Products: handler.NewProductHandler(service.NewLifecycle[models.Product](
			service.Descriptor{Name: "product", UniqueKey: "name"}, st.products)),
		Projects: handler.NewProjectHandler(service.NewLifecycle[models.Project](
			service.Descriptor{Name: "project", UniqueKey: "name"}, st.projects)),
	}

	engine := router.New(log, handlers, authMiddleware)
	srv := configureHTTPServer(c.Listen, engine)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", c.Listen).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
