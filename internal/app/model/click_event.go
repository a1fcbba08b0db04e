package model

import "time"

// Device is the coarse device class derived from the User-Agent header.
type Device string

const (
	DeviceIOS     Device = "ios"
	DeviceAndroid Device = "android"
	DeviceOther   Device = "other"
)

// ClickEvent records a single visit to a short link. Events are published to
// JetStream on redirect and persisted asynchronously; the link's click counter
// is maintained separately and does not depend on this pipeline.
type ClickEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	LinkCode  string    `json:"link_code" gorm:"size:8;index"`
	IP        string    `json:"ip" gorm:"size:64"`
	UserAgent string    `json:"user_agent" gorm:"type:text"`
	Device    Device    `json:"device" gorm:"size:16"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ClickStreamName     = "CLICKS"
	ClickStreamSubject  = "clicks.events"
	ClickConsumerName   = "click-logger"
	ClickStreamMaxBytes = 1024 * 1024 * 100 // 100MB
)
