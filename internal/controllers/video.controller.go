package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"newvision/internal/extractor"
	"newvision/internal/models"
	"newvision/internal/repository"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	repo      repository.VideoRepository
	extractor *extractor.Extractor
}

func NewVideoController(repo repository.VideoRepository, ex *extractor.Extractor) *VideoController {
	return &VideoController{repo: repo, extractor: ex}
}

func (vc *VideoController) GetVideos(c *gin.Context) {
	videos, err := vc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve videos",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Videos retrieved successfully",
		"data":    videos,
	})
}

func (vc *VideoController) CreateVideo(c *gin.Context) {
	var input models.VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	videoID := extractor.YouTubeID(input.URL)
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid YouTube URL",
			"error":   "No video ID could be extracted from the URL",
		})
		return
	}

	title := input.Title
	if title == "" {
		title = "Untitled Video"
	}

	video := &models.Video{
		VideoID:     videoID,
		URL:         input.URL,
		Title:       title,
		Description: input.Description,
		// hqdefault is rendered for every upload, unlike maxresdefault.
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
		Featured:     input.Featured,
		AddedAt:      time.Now().UTC(),
	}

	if err := vc.repo.Create(video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create video",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Video created successfully",
		"data":    video,
	})
}

// ExtractVideoDetails resolves a YouTube URL into title, description and
// thumbnail so the admin form can prefill itself.
func (vc *VideoController) ExtractVideoDetails(c *gin.Context) {
	var body struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "URL is required",
			"error":   err.Error(),
		})
		return
	}

	details, err := vc.extractor.ExtractVideoDetails(c.Request.Context(), body.URL)
	if err != nil {
		if errors.Is(err, extractor.ErrUnsupportedURL) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid YouTube URL",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to extract video details",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Video details extracted successfully",
		"data":    details,
	})
}

func (vc *VideoController) DeleteVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid video ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := vc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete video",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Video deleted successfully",
		"data":    nil,
	})
}
