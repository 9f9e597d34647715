package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"newvision/internal/extractor"
	"newvision/internal/models"
	"newvision/internal/repository"

	"github.com/gin-gonic/gin"
)

type FacebookPostController struct {
	repo repository.FacebookPostRepository
}

func NewFacebookPostController(repo repository.FacebookPostRepository) *FacebookPostController {
	return &FacebookPostController{repo: repo}
}

func (fc *FacebookPostController) GetPosts(c *gin.Context) {
	posts, err := fc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve Facebook posts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Facebook posts retrieved successfully",
		"data":    posts,
	})
}

func (fc *FacebookPostController) CreatePost(c *gin.Context) {
	var input models.FacebookPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !strings.Contains(input.URL, "facebook.com") {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid Facebook URL",
			"error":   "URL must point to facebook.com",
		})
		return
	}

	title := input.Title
	if title == "" {
		title = "Facebook Post"
	}

	post := &models.FacebookPost{
		PostID:      extractor.FacebookPostID(input.URL),
		URL:         input.URL,
		Title:       title,
		Description: input.Description,
		Featured:    input.Featured,
		AddedAt:     time.Now().UTC(),
	}

	if err := fc.repo.Create(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to add Facebook post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Facebook post created successfully",
		"data":    post,
	})
}

func (fc *FacebookPostController) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid post ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := fc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete Facebook post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Facebook post deleted successfully",
		"data":    nil,
	})
}
