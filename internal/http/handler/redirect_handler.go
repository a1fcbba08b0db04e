package handler

import (
	"context"
	"errors"
	"html/template"
	"time"

	"deeplinkr/internal/app/model"
	"deeplinkr/internal/app/repository"
	"deeplinkr/internal/app/service"
	"deeplinkr/internal/infra/prometheus"
	httpUtil "deeplinkr/internal/http/util"
	"deeplinkr/internal/http/view"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RedirectDeps groups dependencies required by redirect handlers.
type RedirectDeps struct {
	Logger         *zap.Logger
	LinkService    service.LinkService
	ClickPublisher *service.ClickPublisher
	Postgres       *pgxpool.Pool
}

// RedirectHandler serves the browser-facing short-link routes.
type RedirectHandler struct {
	logger         *zap.Logger
	linkService    service.LinkService
	clickPublisher *service.ClickPublisher
	postgres       *pgxpool.Pool
}

// NewRedirectHandler creates a redirect handler with the provided dependencies.
func NewRedirectHandler(deps RedirectDeps) *RedirectHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedirectHandler{
		logger:         logger,
		linkService:    deps.LinkService,
		clickPublisher: deps.ClickPublisher,
		postgres:       deps.Postgres,
	}
}

// Register wires redirect routes onto the provided router. The prefixed
// short-link route must be registered after the API group so it only catches
// the leftovers.
func (h *RedirectHandler) Register(router fiber.Router) {
	router.Get("/", h.Health)
	router.Get("/healthz", h.Health)
	router.Get("/:prefix/:code", h.Resolve)
}

// Health reports liveness and pings Postgres through the pgx pool.
func (h *RedirectHandler) Health(c *fiber.Ctx) error {
	status := "ok"
	if h.postgres != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.postgres.Ping(ctx); err != nil {
			h.logger.Warn("health check: postgres ping failed", zap.Error(err))
			status = "degraded"
		}
	}
	return c.JSON(fiber.Map{
		"service": "deeplinkr",
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Resolve handles GET /:prefix/:code. The prefix is informational only;
// lookup is keyed purely by code.
func (h *RedirectHandler) Resolve(c *fiber.Ctx) error {
	prefix := c.Params("prefix")
	code := c.Params("code")
	if !model.KnownPrefix(prefix) || code == "" {
		return h.renderNotFound(c)
	}

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	userAgent := c.Get("User-Agent")
	device := httpUtil.DetectDevice(userAgent)

	directive, err := h.linkService.Resolve(ctx, code, device)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return h.renderNotFound(c)
		}
		h.logger.Error("failed to resolve short link", zap.Error(err), zap.String("code", code))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	prometheus.Redirects.WithLabelValues(string(device)).Inc()

	if h.clickPublisher != nil {
		go h.publishClickEvent(code, c.IP(), userAgent, device)
	}

	h.logger.Debug("redirecting short link",
		zap.String("code", code),
		zap.String("device", string(device)),
		zap.String("target", directive.Target))

	html, err := view.RenderRedirectPage(view.RedirectPageData{
		Code:           code,
		Target:         directive.Target,
		FallbackURL:    directive.FallbackURL,
		FallbackMillis: directive.FallbackDelay.Milliseconds(),
		IOSLink:        template.URL(directive.Link.IOSDeepLink),
		AndroidLink:    template.URL(directive.Link.AndroidDeepLink),
		OriginalURL:    directive.Link.OriginalURL,
		Device:         device,
	})
	if err != nil {
		h.logger.Error("failed to render redirect page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to render page",
		})
	}

	return c.Type("html", "utf-8").SendString(html)
}

func (h *RedirectHandler) renderNotFound(c *fiber.Ctx) error {
	html, err := view.RenderNotFoundPage()
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusNotFound).Type("html", "utf-8").SendString(html)
}

func (h *RedirectHandler) publishClickEvent(code, ip, userAgent string, device model.Device) {
	if err := h.clickPublisher.Publish(code, ip, userAgent, device); err != nil {
		h.logger.Error("failed to publish click event", zap.Error(err), zap.String("code", code))
	}
}
