package models

import "time"

// News is an article on the public site. Storage columns are snake_case,
// the JSON surface keeps the camelCase names the admin dashboard expects
// (display_order is the historical exception).
type News struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Excerpt      string    `gorm:"type:text" json:"excerpt"`
	ImageURL     string    `gorm:"column:image_url" json:"imageUrl"`
	YoutubeURL   string    `gorm:"column:youtube_url" json:"youtubeUrl"`
	FacebookURL  string    `gorm:"column:facebook_url" json:"facebookUrl"`
	Category     string    `gorm:"default:'General'" json:"category"`
	Author       string    `json:"author"`
	Published    bool      `gorm:"default:true" json:"published"`
	FlashNews    bool      `gorm:"column:flash_news;default:false" json:"flashNews"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	Trending     bool      `gorm:"default:false" json:"trending"`
	Views        int       `gorm:"default:0" json:"views"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}

// NewsUpdate carries a partial update. Nil means the field was absent from
// the payload and the stored value is kept.
type NewsUpdate struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	Excerpt      *string `json:"excerpt"`
	ImageURL     *string `json:"imageUrl"`
	YoutubeURL   *string `json:"youtubeUrl"`
	FacebookURL  *string `json:"facebookUrl"`
	Category     *string `json:"category"`
	Published    *bool   `json:"published"`
	FlashNews    *bool   `json:"flashNews"`
	Featured     *bool   `json:"featured"`
	Trending     *bool   `json:"trending"`
	Views        *int    `json:"views"`
	DisplayOrder *int    `json:"display_order"`
}

// NewsInput is the create payload. Published defaults to true when absent,
// every other flag to false.
type NewsInput struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Excerpt     string `json:"excerpt"`
	ImageURL    string `json:"imageUrl"`
	YoutubeURL  string `json:"youtubeUrl"`
	FacebookURL string `json:"facebookUrl"`
	Category    string `json:"category"`
	Published   *bool  `json:"published"`
	FlashNews   bool   `json:"flashNews"`
	Featured    bool   `json:"featured"`
	Trending    bool   `json:"trending"`
}

// NewsOrder is one entry of a bulk display_order rewrite.
type NewsOrder struct {
	ID           uint `json:"id"`
	DisplayOrder int  `json:"display_order"`
}
