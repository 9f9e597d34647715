package controllers

import (
	"net/http"

	"newvision/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	repo repository.SettingsRepository
}

func NewSettingsController(repo repository.SettingsRepository) *SettingsController {
	return &SettingsController{repo: repo}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings retrieved successfully",
		"data":    settings,
	})
}

// UpdateSettings merges the submitted keys into the stored configuration.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	settings, err := sc.repo.Update(values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings updated successfully",
		"data":    settings,
	})
}

// GetChannelInfo reports the configured YouTube channel for the public
// footer widget.
func (sc *SettingsController) GetChannelInfo(c *gin.Context) {
	settings, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch channel info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Channel info retrieved successfully",
		"data": gin.H{
			"channelName": settings["siteTitle"],
			"channelUrl":  settings["youtubeChannelUrl"],
			"channelId":   settings["youtubeChannelId"],
		},
	})
}
