package platform

import (
	"net/url"
	"strings"

	"deeplinkr/internal/app/model"
)

// Android package names per platform.
const (
	pkgYouTube   = "com.google.android.youtube"
	pkgInstagram = "com.instagram.android"
	pkgTikTok    = "com.zhiliaoapp.musically"
	pkgTwitter   = "com.twitter.android"
	pkgFacebook  = "com.facebook.katana"
	pkgLinkedIn  = "com.linkedin.android"
)

// DeepLinks holds the platform-native app URIs for one link: an iOS URI
// scheme link and an Android intent:// link. For unrecognized platforms both
// are the original URL and no native-app attempt is made.
type DeepLinks struct {
	IOS     string
	Android string
}

// Synthesize builds the deep-link pair for a classified URL. Pure and
// deterministic; performs no I/O.
func Synthesize(c Classification, originalURL string) DeepLinks {
	switch c.Platform {
	case model.PlatformYouTube:
		return youtubeLinks(c, originalURL)
	case model.PlatformInstagram:
		return DeepLinks{
			IOS:     "instagram://media?id=" + c.ID,
			Android: androidIntent(strippedTarget(originalURL), pkgInstagram, originalURL),
		}
	case model.PlatformTikTok:
		return DeepLinks{
			IOS:     "snssdk1233://aweme/detail/" + c.ID,
			Android: androidIntent(strippedTarget(originalURL), pkgTikTok, originalURL),
		}
	case model.PlatformTwitter:
		return DeepLinks{
			IOS:     "twitter://" + strings.TrimPrefix(c.Path, "/"),
			Android: androidIntent(strippedTarget(originalURL), pkgTwitter, originalURL),
		}
	case model.PlatformFacebook:
		return DeepLinks{
			IOS:     "fb://" + strings.TrimPrefix(c.Path, "/"),
			Android: androidIntent(strippedTarget(originalURL), pkgFacebook, originalURL),
		}
	case model.PlatformLinkedIn:
		return DeepLinks{
			IOS:     "linkedin://" + strings.TrimPrefix(c.Path, "/"),
			Android: androidIntent(strippedTarget(originalURL), pkgLinkedIn, originalURL),
		}
	default:
		return DeepLinks{IOS: originalURL, Android: originalURL}
	}
}

func youtubeLinks(c Classification, originalURL string) DeepLinks {
	switch c.Type {
	case model.TypeVideo:
		return DeepLinks{
			IOS:     "youtube://watch?v=" + c.ID,
			Android: androidIntent("www.youtube.com/watch?v="+c.ID, pkgYouTube, originalURL),
		}
	case model.TypeShorts:
		return DeepLinks{
			IOS:     "youtube://shorts/" + c.ID,
			Android: androidIntent("www.youtube.com/shorts/"+c.ID, pkgYouTube, originalURL),
		}
	default:
		return DeepLinks{
			IOS:     "youtube://" + originalURL,
			Android: androidIntent(strippedTarget(originalURL), pkgYouTube, originalURL),
		}
	}
}

// androidIntent builds the generic intent URI shape: the target with its
// scheme stripped, the required package, and a percent-encoded browser
// fallback for when the app is absent.
func androidIntent(target, pkg, fallbackURL string) string {
	var b strings.Builder
	b.WriteString("intent://")
	b.WriteString(target)
	b.WriteString("#Intent;scheme=https;package=")
	b.WriteString(pkg)
	b.WriteString(";S.browser_fallback_url=")
	b.WriteString(url.QueryEscape(fallbackURL))
	b.WriteString(";end")
	return b.String()
}

// strippedTarget reduces a URL to host+path+query for use as an intent body.
// Built from the parsed URL rather than a literal scheme replace so http://
// inputs behave the same as https://.
func strippedTarget(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	}
	target := u.Host + u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
