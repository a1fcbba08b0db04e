package view

import (
	"bytes"
	"html/template"

	"deeplinkr/internal/app/model"
)

// RedirectPageData provides the dynamic fields required by the redirect
// template. Target is the device-selected deep link; FallbackURL is always
// the original web URL. The app links are template.URL because their custom
// schemes (youtube://, intent://) would otherwise be stripped by the
// template's URL sanitizer; they are synthesized server-side from a
// validated URL, never echoed from the request.
type RedirectPageData struct {
	Code           string
	Target         string
	FallbackURL    string
	FallbackMillis int64
	IOSLink        template.URL
	AndroidLink    template.URL
	OriginalURL    string
	Device         model.Device
}

var redirectPageTmpl = template.Must(template.New("redirect_page").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8" />
	<meta name="viewport" content="width=device-width, initial-scale=1" />
	<title>Opening app…</title>
	<style>
		:root {
			--bg: #090a0f;
			--card: rgba(255, 255, 255, 0.05);
			--border: rgba(255, 255, 255, 0.15);
			--text: #e7ecff;
			--muted: #a1acc5;
			--accent: #7dd3fc;
			--accent-strong: #38bdf8;
			font-family: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
		}
		* { box-sizing: border-box; }
		body {
			margin: 0;
			min-height: 100vh;
			display: flex;
			align-items: center;
			justify-content: center;
			background: radial-gradient(circle at 20% 20%, #111827, #030712 60%);
			color: var(--text);
		}
		.card {
			background: var(--card);
			border: 1px solid var(--border);
			border-radius: 18px;
			padding: 32px;
			width: min(520px, 92vw);
			box-shadow: 0 45px 100px rgba(0,0,0,0.35);
			backdrop-filter: blur(18px);
		}
		h1 { font-size: 1.5rem; margin-bottom: 6px; }
		p { color: var(--muted); margin-top: 0; }
		.actions {
			display: flex;
			flex-direction: column;
			gap: 12px;
			margin-top: 24px;
		}
		a.button {
			display: inline-flex;
			align-items: center;
			justify-content: center;
			padding: 0 28px;
			height: 48px;
			border-radius: 999px;
			background: linear-gradient(120deg, var(--accent), var(--accent-strong));
			color: #050708;
			font-weight: 600;
			text-decoration: none;
		}
		a.button.secondary {
			background: none;
			border: 1px solid var(--border);
			color: var(--text);
		}
		.meta {
			margin-top: 16px;
			font-size: 0.85rem;
			color: rgba(231, 236, 255, 0.65);
			word-break: break-all;
		}
	</style>
</head>
<body>
	<div class="card">
		<h1>Opening the app…</h1>
		<p>If nothing happens you’ll be taken to the website shortly.</p>

		<div class="actions">
			{{if eq .Device "ios"}}
			<a class="button" href="{{.IOSLink}}">Open in app</a>
			{{else if eq .Device "android"}}
			<a class="button" href="{{.AndroidLink}}">Open in app</a>
			{{else}}
			<a class="button" href="{{.OriginalURL}}">Open link</a>
			{{end}}
			<a class="button secondary" href="{{.OriginalURL}}">Continue in browser</a>
		</div>

		<div class="meta">/{{.Code}} → {{.OriginalURL}}</div>
	</div>

	<script>
		(function() {
			const target = {{.Target}};
			const fallback = {{.FallbackURL}};
			const delay = {{.FallbackMillis}};

			window.location = target;

			setTimeout(function() {
				if (document.visibilityState !== "hidden") {
					window.location = fallback;
				}
			}, delay);
		})();
	</script>
</body>
</html>
`))

// RenderRedirectPage expands the redirect page template with the provided data.
func RenderRedirectPage(data RedirectPageData) (string, error) {
	var buf bytes.Buffer
	if err := redirectPageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var notFoundTmpl = template.Must(template.New("not_found").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8" />
	<meta name="viewport" content="width=device-width, initial-scale=1" />
	<title>Link not found</title>
	<style>
		body {
			margin: 0;
			min-height: 100vh;
			display: flex;
			align-items: center;
			justify-content: center;
			background: #090a0f;
			color: #e7ecff;
			font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
			text-align: center;
		}
		h1 { font-size: 1.6rem; margin-bottom: 8px; }
		p { color: #a1acc5; }
	</style>
</head>
<body>
	<div>
		<h1>Link not found</h1>
		<p>This short link doesn’t exist or was mistyped.</p>
	</div>
</body>
</html>
`))

// RenderNotFoundPage returns the browser-facing 404 page.
func RenderNotFoundPage() (string, error) {
	var buf bytes.Buffer
	if err := notFoundTmpl.Execute(&buf, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}
