package util

import (
	"regexp"

	"deeplinkr/internal/app/model"
)

// Fixed patterns; iOS is checked first so an Android token in an unrelated
// part of the UA string cannot shadow an Apple device.
var (
	iosPattern     = regexp.MustCompile(`(?i)iPad|iPhone|iPod`)
	androidPattern = regexp.MustCompile(`(?i)Android`)
)

// DetectDevice classifies the requesting device from its User-Agent string.
// Pure function over fixed patterns so it can be unit-tested with literals.
func DetectDevice(userAgent string) model.Device {
	switch {
	case iosPattern.MatchString(userAgent):
		return model.DeviceIOS
	case androidPattern.MatchString(userAgent):
		return model.DeviceAndroid
	default:
		return model.DeviceOther
	}
}
