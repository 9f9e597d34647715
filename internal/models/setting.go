package models

// Setting is one key/value row of the site configuration. The API exposes
// the whole set as a flat JSON object.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// DefaultSettings seeds a fresh installation.
func DefaultSettings() map[string]string {
	return map[string]string{
		"siteTitle":         "New Vision Mayyanadan",
		"siteDescription":   "Local news reporting from Mayyanadan",
		"youtubeChannelId":  "@newvisionmayyanadan",
		"youtubeChannelUrl": "https://www.youtube.com/@newvisionmayyanadan",
		"facebookPageId":    "61577465543293",
		"facebookPageUrl":   "https://www.facebook.com/profile.php?id=61577465543293",
		"contactEmail":      "",
		"contactPhone":      "",
	}
}
