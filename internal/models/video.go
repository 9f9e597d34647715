package models

import "time"

type Video struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	VideoID      string    `gorm:"column:video_id" json:"videoId"`
	URL          string    `gorm:"not null" json:"url"`
	Title        string    `json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ThumbnailURL string    `gorm:"column:thumbnail_url" json:"thumbnailUrl"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	AddedAt      time.Time `gorm:"column:added_at" json:"addedAt"`
}

type VideoInput struct {
	URL         string `json:"url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}
