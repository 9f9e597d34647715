package models

import "time"

type FacebookPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      string    `gorm:"column:post_id" json:"postId"`
	URL         string    `gorm:"not null" json:"url"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	AddedAt     time.Time `gorm:"column:added_at" json:"addedAt"`
}

func (FacebookPost) TableName() string {
	return "facebook_posts"
}

type FacebookPostInput struct {
	URL         string `json:"url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}
