package util

import (
	"testing"

	"deeplinkr/internal/app/model"
)

func TestDetectDevice(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want model.Device
	}{
		{
			name: "iphone safari",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			want: model.DeviceIOS,
		},
		{
			name: "ipad",
			ua:   "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15",
			want: model.DeviceIOS,
		},
		{
			name: "ipod",
			ua:   "Mozilla/5.0 (iPod touch; CPU iPhone OS 15_0 like Mac OS X)",
			want: model.DeviceIOS,
		},
		{
			name: "android chrome",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36",
			want: model.DeviceAndroid,
		},
		{
			name: "desktop mac",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
			want: model.DeviceOther,
		},
		{
			name: "desktop windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			want: model.DeviceOther,
		},
		{
			name: "empty",
			ua:   "",
			want: model.DeviceOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDevice(tt.ua); got != tt.want {
				t.Errorf("DetectDevice(%q) = %q, want %q", tt.ua, got, tt.want)
			}
		})
	}
}
