// Package platform classifies URLs against known social platforms and builds
// the native app links used by the redirector. Everything here is pure string
// and URL manipulation; no I/O.
package platform

import (
	"errors"
	"net/url"
	"strings"

	"deeplinkr/internal/app/model"
)

// ErrMalformedURL signals that the input does not parse as an absolute URL.
var ErrMalformedURL = errors.New("malformed url")

// Classification is the transient result of classifying a URL. ID is empty
// when the platform rule extracts no resource identifier.
type Classification struct {
	Platform model.Platform
	Type     model.ResourceType
	ID       string
	Path     string
}

// URLType renders the stored url_type column value, e.g. "youtube_video".
func (c Classification) URLType() string {
	return string(c.Platform) + "_" + string(c.Type)
}

// hostRule maps hostname fragments to a platform. Rules are evaluated in
// order; the first match wins.
type hostRule struct {
	platform  model.Platform
	fragments []string
}

var hostRules = []hostRule{
	{model.PlatformYouTube, []string{"youtube.com", "youtu.be"}},
	{model.PlatformInstagram, []string{"instagram.com"}},
	{model.PlatformTikTok, []string{"tiktok.com"}},
	{model.PlatformTwitter, []string{"twitter.com", "x.com"}},
	{model.PlatformFacebook, []string{"facebook.com"}},
	{model.PlatformLinkedIn, []string{"linkedin.com"}},
}

// Classify inspects an arbitrary input URL and determines which platform it
// belongs to and what kind of resource it references. Deterministic and
// side-effect free.
func Classify(raw string) (Classification, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Classification{}, ErrMalformedURL
	}

	host := strings.ToLower(u.Hostname())
	path := u.Path
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	for _, rule := range hostRules {
		for _, frag := range rule.fragments {
			if !matchHost(host, frag) {
				continue
			}
			c := classifyPath(rule.platform, host, u)
			c.Path = path
			return c, nil
		}
	}

	// Unrecognized hostname: plain web page, query dropped.
	return Classification{
		Platform: model.PlatformWeb,
		Type:     model.TypeGeneral,
		Path:     u.Path,
	}, nil
}

// matchHost is equality or dot-boundary suffix matching, so "x.com" matches
// "www.x.com" but not "box.com".
func matchHost(host, frag string) bool {
	return host == frag || strings.HasSuffix(host, "."+frag)
}

func classifyPath(p model.Platform, host string, u *url.URL) Classification {
	switch p {
	case model.PlatformYouTube:
		return classifyYouTube(host, u)
	case model.PlatformInstagram:
		return classifyInstagram(u)
	case model.PlatformTikTok:
		return classifyTikTok(u)
	default:
		return Classification{Platform: p, Type: model.TypeGeneral}
	}
}

func classifyYouTube(host string, u *url.URL) Classification {
	c := Classification{Platform: model.PlatformYouTube}

	switch {
	case matchHost(host, "youtu.be"):
		c.Type = model.TypeVideo
		c.ID = strings.TrimPrefix(u.Path, "/")
	case u.Path == "/watch":
		c.Type = model.TypeVideo
		c.ID = u.Query().Get("v")
	case strings.HasPrefix(u.Path, "/shorts/"):
		c.Type = model.TypeShorts
		c.ID = strings.TrimPrefix(u.Path, "/shorts/")
	default:
		c.Type = model.TypeGeneral
	}
	return c
}

func classifyInstagram(u *url.URL) Classification {
	c := Classification{Platform: model.PlatformInstagram, Type: model.TypeGeneral}

	if strings.HasPrefix(u.Path, "/p/") || strings.HasPrefix(u.Path, "/reel/") {
		c.Type = model.TypePost
		if parts := strings.Split(u.Path, "/"); len(parts) > 2 {
			c.ID = parts[2]
		}
	}
	return c
}

func classifyTikTok(u *url.URL) Classification {
	c := Classification{Platform: model.PlatformTikTok, Type: model.TypeGeneral}

	if _, after, found := strings.Cut(u.Path, "/video/"); found {
		c.Type = model.TypeVideo
		c.ID = after
	}
	return c
}
