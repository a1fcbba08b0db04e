package platform

import (
	"net/url"
	"strings"
	"testing"
)

func mustClassify(t *testing.T, raw string) Classification {
	t.Helper()
	c, err := Classify(raw)
	if err != nil {
		t.Fatalf("Classify(%q) error: %v", raw, err)
	}
	return c
}

func TestSynthesize_YouTubeVideo(t *testing.T) {
	const original = "https://youtu.be/abc123"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != "youtube://watch?v=abc123" {
		t.Errorf("ios = %q", links.IOS)
	}
	for _, want := range []string{
		"intent://www.youtube.com/watch?v=abc123",
		"package=com.google.android.youtube",
		"S.browser_fallback_url=" + url.QueryEscape(original),
		";end",
	} {
		if !strings.Contains(links.Android, want) {
			t.Errorf("android = %q, missing %q", links.Android, want)
		}
	}
}

func TestSynthesize_YouTubeShorts(t *testing.T) {
	const original = "https://www.youtube.com/shorts/xyz789"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != "youtube://shorts/xyz789" {
		t.Errorf("ios = %q", links.IOS)
	}
	if !strings.Contains(links.Android, "intent://www.youtube.com/shorts/xyz789") {
		t.Errorf("android = %q", links.Android)
	}
}

func TestSynthesize_YouTubeGeneral(t *testing.T) {
	const original = "https://www.youtube.com/@somechannel"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != "youtube://"+original {
		t.Errorf("ios = %q", links.IOS)
	}
	if !strings.HasPrefix(links.Android, "intent://www.youtube.com/@somechannel#Intent") {
		t.Errorf("android = %q", links.Android)
	}
}

func TestSynthesize_Instagram(t *testing.T) {
	const original = "https://www.instagram.com/p/XYZ/"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != "instagram://media?id=XYZ" {
		t.Errorf("ios = %q", links.IOS)
	}
	if !strings.Contains(links.Android, "package=com.instagram.android") {
		t.Errorf("android = %q", links.Android)
	}
}

func TestSynthesize_TikTok(t *testing.T) {
	const original = "https://www.tiktok.com/@user/video/7123456789"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != "snssdk1233://aweme/detail/7123456789" {
		t.Errorf("ios = %q", links.IOS)
	}
	if !strings.Contains(links.Android, "package=com.zhiliaoapp.musically") {
		t.Errorf("android = %q", links.Android)
	}
}

func TestSynthesize_PathSchemes(t *testing.T) {
	tests := []struct {
		original string
		iosWant  string
		pkg      string
	}{
		{"https://twitter.com/user/status/123", "twitter://user/status/123", "com.twitter.android"},
		{"https://www.facebook.com/somepage", "fb://somepage", "com.facebook.katana"},
		{"https://www.linkedin.com/in/someone", "linkedin://in/someone", "com.linkedin.android"},
	}

	for _, tt := range tests {
		links := Synthesize(mustClassify(t, tt.original), tt.original)
		if links.IOS != tt.iosWant {
			t.Errorf("Synthesize(%q).IOS = %q, want %q", tt.original, links.IOS, tt.iosWant)
		}
		if !strings.Contains(links.Android, "package="+tt.pkg) {
			t.Errorf("Synthesize(%q).Android = %q, missing package %q", tt.original, links.Android, tt.pkg)
		}
	}
}

func TestSynthesize_WebPassthrough(t *testing.T) {
	const original = "https://example.com/page"
	links := Synthesize(mustClassify(t, original), original)

	if links.IOS != original || links.Android != original {
		t.Errorf("web links should pass through verbatim, got %+v", links)
	}
}

func TestSynthesize_HTTPSchemeHandled(t *testing.T) {
	// The intent body is built from the parsed URL, so http:// inputs strip
	// just as cleanly as https://.
	const original = "http://www.facebook.com/somepage?ref=share"
	links := Synthesize(mustClassify(t, original), original)

	if !strings.HasPrefix(links.Android, "intent://www.facebook.com/somepage?ref=share#Intent") {
		t.Errorf("android = %q", links.Android)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	const original = "https://youtu.be/abc123"
	c := mustClassify(t, original)
	first := Synthesize(c, original)
	for i := 0; i < 5; i++ {
		if got := Synthesize(c, original); got != first {
			t.Fatalf("synthesis changed between calls: %+v vs %+v", got, first)
		}
	}
}
