package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"deeplinkr/internal/app/repository"
	"deeplinkr/internal/app/service"
	"deeplinkr/internal/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIDeps groups dependencies required by API handlers.
type APIDeps struct {
	Logger      *zap.Logger
	LinkService service.LinkService
	BaseURL     string
}

// APIHandler implements the JSON API endpoints.
type APIHandler struct {
	logger      *zap.Logger
	linkService service.LinkService
	baseURL     string
}

// NewAPIHandler creates an API handler with the provided dependencies.
func NewAPIHandler(deps APIDeps) *APIHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{
		logger:      logger,
		linkService: deps.LinkService,
		baseURL:     strings.TrimSuffix(deps.BaseURL, "/"),
	}
}

// Register wires API routes onto the provided router.
func (h *APIHandler) Register(router fiber.Router) {
	api := router.Group("/api")
	{
		api.Post("/short-url", h.CreateShortURL)
		api.Get("/links", h.ListLinks)
		api.Get("/links/:code", h.GetLink)
	}
}

// CreateShortURLRequest represents the request body for registering a URL.
type CreateShortURLRequest struct {
	URL string `json:"url"`
}

// CreateShortURLResponse represents the success response.
type CreateShortURLResponse struct {
	Success     bool   `json:"success"`
	ShortURL    string `json:"shortUrl"`
	OriginalURL string `json:"originalUrl"`
	Platform    string `json:"platform"`
	Type        string `json:"type"`
}

// CreateShortURL handles POST /api/short-url.
func (h *APIHandler) CreateShortURL(c *fiber.Ctx) error {
	var req CreateShortURLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "url is required",
		})
	}

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := h.linkService.Register(ctx, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "please provide a valid absolute URL",
			})
		}
		h.logger.Error("failed to register short url", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to create short url, please try again",
		})
	}

	prometheus.LinksCreated.WithLabelValues(string(result.Platform)).Inc()

	return c.JSON(CreateShortURLResponse{
		Success:     true,
		ShortURL:    h.baseURL + "/" + result.ShortPath(),
		OriginalURL: result.OriginalURL,
		Platform:    string(result.Platform),
		Type:        string(result.Type),
	})
}

// LinkStatsResponse represents a stored link with its click count.
type LinkStatsResponse struct {
	Code            string `json:"code"`
	OriginalURL     string `json:"originalUrl"`
	IOSDeepLink     string `json:"iosDeepLink"`
	AndroidDeepLink string `json:"androidDeepLink"`
	URLType         string `json:"urlType"`
	ClickCount      int64  `json:"clickCount"`
	CreatedAt       string `json:"createdAt"`
}

// GetLink handles GET /api/links/:code.
func (h *APIHandler) GetLink(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code is required",
		})
	}

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	link, err := h.linkService.GetLink(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "link not found",
			})
		}
		h.logger.Error("failed to get link", zap.Error(err), zap.String("code", code))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(LinkStatsResponse{
		Code:            link.Code,
		OriginalURL:     link.OriginalURL,
		IOSDeepLink:     link.IOSDeepLink,
		AndroidDeepLink: link.AndroidDeepLink,
		URLType:         link.URLType,
		ClickCount:      link.ClickCount,
		CreatedAt:       link.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// ListLinks handles GET /api/links.
func (h *APIHandler) ListLinks(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	links, err := h.linkService.ListLinks(ctx, limit, offset)
	if err != nil {
		h.logger.Error("failed to list links", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	response := make([]LinkStatsResponse, len(links))
	for i, link := range links {
		response[i] = LinkStatsResponse{
			Code:            link.Code,
			OriginalURL:     link.OriginalURL,
			IOSDeepLink:     link.IOSDeepLink,
			AndroidDeepLink: link.AndroidDeepLink,
			URLType:         link.URLType,
			ClickCount:      link.ClickCount,
			CreatedAt:       link.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return c.JSON(fiber.Map{
		"links": response,
		"count": len(response),
	})
}
