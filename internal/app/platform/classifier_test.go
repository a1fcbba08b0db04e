package platform

import (
	"errors"
	"testing"

	"deeplinkr/internal/app/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform model.Platform
		typ      model.ResourceType
		id       string
		path     string
	}{
		{
			name:     "youtu.be short host",
			url:      "https://youtu.be/abc123",
			platform: model.PlatformYouTube,
			typ:      model.TypeVideo,
			id:       "abc123",
			path:     "/abc123",
		},
		{
			name:     "youtube watch",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			platform: model.PlatformYouTube,
			typ:      model.TypeVideo,
			id:       "dQw4w9WgXcQ",
			path:     "/watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "youtube shorts",
			url:      "https://www.youtube.com/shorts/xyz789",
			platform: model.PlatformYouTube,
			typ:      model.TypeShorts,
			id:       "xyz789",
			path:     "/shorts/xyz789",
		},
		{
			name:     "youtube channel page",
			url:      "https://www.youtube.com/@somechannel",
			platform: model.PlatformYouTube,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/@somechannel",
		},
		{
			name:     "instagram post",
			url:      "https://www.instagram.com/p/XYZ/",
			platform: model.PlatformInstagram,
			typ:      model.TypePost,
			id:       "XYZ",
			path:     "/p/XYZ/",
		},
		{
			name:     "instagram reel",
			url:      "https://www.instagram.com/reel/Cabc123/",
			platform: model.PlatformInstagram,
			typ:      model.TypePost,
			id:       "Cabc123",
			path:     "/reel/Cabc123/",
		},
		{
			name:     "instagram profile",
			url:      "https://www.instagram.com/someuser",
			platform: model.PlatformInstagram,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/someuser",
		},
		{
			name:     "tiktok video",
			url:      "https://www.tiktok.com/@user/video/7123456789",
			platform: model.PlatformTikTok,
			typ:      model.TypeVideo,
			id:       "7123456789",
			path:     "/@user/video/7123456789",
		},
		{
			name:     "tiktok profile",
			url:      "https://www.tiktok.com/@user",
			platform: model.PlatformTikTok,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/@user",
		},
		{
			name:     "twitter status",
			url:      "https://twitter.com/user/status/123",
			platform: model.PlatformTwitter,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/user/status/123",
		},
		{
			name:     "x.com status",
			url:      "https://x.com/user/status/123",
			platform: model.PlatformTwitter,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/user/status/123",
		},
		{
			name:     "facebook page",
			url:      "https://www.facebook.com/somepage",
			platform: model.PlatformFacebook,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/somepage",
		},
		{
			name:     "linkedin profile",
			url:      "https://www.linkedin.com/in/someone",
			platform: model.PlatformLinkedIn,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/in/someone",
		},
		{
			name:     "plain web page drops query",
			url:      "https://example.com/page?utm_source=x",
			platform: model.PlatformWeb,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/page",
		},
		{
			name:     "uppercase host matches case-insensitively",
			url:      "https://WWW.YOUTUBE.COM/watch?v=abc",
			platform: model.PlatformYouTube,
			typ:      model.TypeVideo,
			id:       "abc",
			path:     "/watch?v=abc",
		},
		{
			name:     "lookalike host is not twitter",
			url:      "https://notx.com/user",
			platform: model.PlatformWeb,
			typ:      model.TypeGeneral,
			id:       "",
			path:     "/user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.url)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.url, err)
			}
			if got.Platform != tt.platform {
				t.Errorf("platform = %q, want %q", got.Platform, tt.platform)
			}
			if got.Type != tt.typ {
				t.Errorf("type = %q, want %q", got.Type, tt.typ)
			}
			if got.ID != tt.id {
				t.Errorf("id = %q, want %q", got.ID, tt.id)
			}
			if got.Path != tt.path {
				t.Errorf("path = %q, want %q", got.Path, tt.path)
			}
		})
	}
}

func TestClassify_Malformed(t *testing.T) {
	for _, raw := range []string{"not-a-url", "", "/relative/path", "://nohost"} {
		if _, err := Classify(raw); !errors.Is(err, ErrMalformedURL) {
			t.Errorf("Classify(%q) = %v, want ErrMalformedURL", raw, err)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	const url = "https://www.youtube.com/watch?v=abc"
	first, err := Classify(url)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Classify(url)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", again, first)
		}
	}
}

func TestClassification_URLType(t *testing.T) {
	c := Classification{Platform: model.PlatformYouTube, Type: model.TypeVideo}
	if got := c.URLType(); got != "youtube_video" {
		t.Errorf("URLType() = %q, want %q", got, "youtube_video")
	}
}
