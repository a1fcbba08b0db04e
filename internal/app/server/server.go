package server

import (
	"context"

	"deeplinkr/internal/app/service"
	"deeplinkr/internal/http/handler"
	"deeplinkr/internal/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies bundles infrastructure dependencies required by the HTTP
// server.
type Dependencies struct {
	Logger         *zap.Logger
	Postgres       *pgxpool.Pool
	Redis          *redis.Client
	LinkService    service.LinkService
	ClickPublisher *service.ClickPublisher
	BaseURL        string
}

// Server wraps the Fiber application and its dependencies.
type Server struct {
	app  *fiber.App
	deps Dependencies
}

// New creates a new HTTP server instance with default routes.
func New(deps Dependencies) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:  app,
		deps: deps,
	}

	s.registerRoutes()
	return s
}

// Listen starts the Fiber server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the Fiber server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app, mainly for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.deps.Logger))
	s.app.Use(middleware.Logger(s.deps.Logger))
	s.app.Use(middleware.CORS())

	apiHandler := handler.NewAPIHandler(handler.APIDeps{
		Logger:      s.deps.Logger,
		LinkService: s.deps.LinkService,
		BaseURL:     s.deps.BaseURL,
	})

	// Registration is the only rate-limited surface; redirects stay cheap.
	if s.deps.Redis != nil {
		s.app.Use("/api", middleware.RateLimit(s.deps.Redis, middleware.DefaultRateLimitConfig(), s.deps.Logger))
	}
	apiHandler.Register(s.app)

	// Registered last: /:prefix/:code catches everything the API group
	// didn't.
	redirectHandler := handler.NewRedirectHandler(handler.RedirectDeps{
		Logger:         s.deps.Logger,
		LinkService:    s.deps.LinkService,
		ClickPublisher: s.deps.ClickPublisher,
		Postgres:       s.deps.Postgres,
	})
	redirectHandler.Register(s.app)
}
