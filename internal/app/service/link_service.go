package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deeplinkr/internal/app/model"
	"deeplinkr/internal/app/platform"
	"deeplinkr/internal/app/repository"
	"deeplinkr/internal/app/shortcode"
)

var (
	// ErrInvalidURL signals that the submitted URL is not a well-formed
	// absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrCodeExhausted signals that short-code allocation collided on every
	// attempt. Registration may be retried as a whole.
	ErrCodeExhausted = errors.New("short code allocation exhausted")
)

// FallbackDelay is how long the redirect page waits for the native app to
// take over before force-navigating to the original URL.
const FallbackDelay = 3000 * time.Millisecond

// LinkService defines behaviour-level operations on short links.
type LinkService interface {
	Register(ctx context.Context, originalURL string) (*RegisterResult, error)
	Resolve(ctx context.Context, code string, device model.Device) (*RedirectDirective, error)
	GetLink(ctx context.Context, code string) (*model.Link, error)
	ListLinks(ctx context.Context, limit, offset int) ([]model.Link, error)
}

// RegisterResult carries everything a caller needs to compose the public
// short URL for a freshly registered link.
type RegisterResult struct {
	Code            string
	Platform        model.Platform
	Type            model.ResourceType
	IOSDeepLink     string
	AndroidDeepLink string
	OriginalURL     string
}

// ShortPath renders the routing path of the public short URL, e.g. "yt/a1b2c3".
func (r *RegisterResult) ShortPath() string {
	return r.Platform.Prefix() + "/" + r.Code
}

// RedirectDirective tells the redirect page where to send the visitor: the
// device-appropriate primary target, plus the original URL to fall back to
// after FallbackDelay if the native app never took over.
type RedirectDirective struct {
	Target        string
	FallbackURL   string
	FallbackDelay time.Duration
	Link          *model.Link
}

type linkService struct {
	repo repository.LinkRepository
	gen  *shortcode.Generator
}

// NewLinkService returns a service implementation backed by the given
// repository and code generator.
func NewLinkService(repo repository.LinkRepository, gen *shortcode.Generator) LinkService {
	if gen == nil {
		gen = shortcode.NewGenerator(0)
	}
	return &linkService{repo: repo, gen: gen}
}

// Register validates and classifies the URL, synthesizes the deep-link pair,
// and persists a new immutable record under a freshly allocated code.
// Identical URLs registered twice get distinct codes; there is no dedup.
func (s *linkService) Register(ctx context.Context, originalURL string) (*RegisterResult, error) {
	classification, err := platform.Classify(originalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, originalURL)
	}

	deepLinks := platform.Synthesize(classification, originalURL)

	for attempt := 0; attempt < shortcode.MaxAttempts; attempt++ {
		code, err := s.gen.Draw()
		if err != nil {
			return nil, fmt.Errorf("draw code: %w", err)
		}
		if s.gen.SeenBefore(code) {
			continue
		}

		link := &model.Link{
			Code:            code,
			OriginalURL:     originalURL,
			IOSDeepLink:     deepLinks.IOS,
			AndroidDeepLink: deepLinks.Android,
			URLType:         classification.URLType(),
		}

		createErr := s.repo.Create(ctx, link)
		if errors.Is(createErr, repository.ErrCodeTaken) {
			s.gen.Remember(code)
			continue
		}
		if createErr != nil {
			return nil, fmt.Errorf("create link: %w", createErr)
		}

		s.gen.Remember(code)
		return &RegisterResult{
			Code:            code,
			Platform:        classification.Platform,
			Type:            classification.Type,
			IOSDeepLink:     deepLinks.IOS,
			AndroidDeepLink: deepLinks.Android,
			OriginalURL:     originalURL,
		}, nil
	}

	return nil, ErrCodeExhausted
}

// Resolve looks up the record, counts the visit, and selects the redirect
// target for the requesting device. The increment is the only side effect
// and happens exactly once per successful resolution.
func (s *linkService) Resolve(ctx context.Context, code string, device model.Device) (*RedirectDirective, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}

	if err := s.repo.IncrementClicks(ctx, code); err != nil {
		return nil, fmt.Errorf("count click: %w", err)
	}

	var target string
	switch device {
	case model.DeviceIOS:
		target = link.IOSDeepLink
	case model.DeviceAndroid:
		target = link.AndroidDeepLink
	default:
		target = link.OriginalURL
	}

	return &RedirectDirective{
		Target:        target,
		FallbackURL:   link.OriginalURL,
		FallbackDelay: FallbackDelay,
		Link:          link,
	}, nil
}

func (s *linkService) GetLink(ctx context.Context, code string) (*model.Link, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}
	return link, nil
}

func (s *linkService) ListLinks(ctx context.Context, limit, offset int) ([]model.Link, error) {
	links, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}
