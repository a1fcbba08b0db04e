package model

import "time"

// Platform identifies the social platform a URL belongs to.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformWeb       Platform = "web"
)

// ResourceType describes what kind of resource a classified URL references.
type ResourceType string

const (
	TypeVideo   ResourceType = "video"
	TypeShorts  ResourceType = "shorts"
	TypePost    ResourceType = "post"
	TypeGeneral ResourceType = "general"
)

// Prefix returns the two-letter routing segment used in public short URLs.
func (p Platform) Prefix() string {
	switch p {
	case PlatformYouTube:
		return "yt"
	case PlatformInstagram:
		return "ig"
	case PlatformTikTok:
		return "tt"
	case PlatformTwitter:
		return "tw"
	case PlatformFacebook:
		return "fb"
	case PlatformLinkedIn:
		return "li"
	default:
		return "web"
	}
}

// KnownPrefix reports whether s is a recognized routing prefix. The prefix is
// informational only; lookups are keyed purely by code.
func KnownPrefix(s string) bool {
	switch s {
	case "yt", "ig", "tt", "tw", "fb", "li", "web":
		return true
	}
	return false
}

// Link describes the short-link entity stored in Postgres. Everything except
// ClickCount is immutable after creation.
type Link struct {
	Code            string    `db:"code" gorm:"primaryKey;size:8"`
	OriginalURL     string    `db:"original_url" gorm:"type:text;not null"`
	IOSDeepLink     string    `db:"ios_deep_link" gorm:"type:text;not null"`
	AndroidDeepLink string    `db:"android_deep_link" gorm:"type:text;not null"`
	URLType         string    `db:"url_type" gorm:"size:32;not null"`
	ClickCount      int64     `db:"click_count" gorm:"not null;default:0"`
	CreatedAt       time.Time `db:"created_at" gorm:"autoCreateTime"`
}
