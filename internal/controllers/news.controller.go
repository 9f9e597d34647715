package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"newvision/internal/extractor"
	"newvision/internal/models"
	"newvision/internal/repository"
	"newvision/internal/services"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	service   *services.NewsService
	extractor *extractor.Extractor
}

func NewNewsController(service *services.NewsService, ex *extractor.Extractor) *NewsController {
	return &NewsController{service: service, extractor: ex}
}

// GetNews returns published articles filtered by the public query
// parameters and sorted by display order.
func (nc *NewsController) GetNews(c *gin.Context) {
	filter := services.NewsFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Featured:  c.Query("featured"),
		Trending:  c.Query("trending"),
		FlashNews: c.Query("flashNews"),
	}

	news, err := nc.service.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "News retrieved successfully",
		"data":    news,
	})
}

// GetFlashNews returns the single flashed article, or null when no article
// is currently flashed.
func (nc *NewsController) GetFlashNews(c *gin.Context) {
	article, err := nc.service.Flash()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve flash news",
			"error":   err.Error(),
		})
		return
	}

	if article == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "No flash news",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Flash news retrieved successfully",
		"data":    article,
	})
}

func (nc *NewsController) GetFeaturedNews(c *gin.Context) {
	news, err := nc.service.Featured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve featured news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Featured news retrieved successfully",
		"data":    news,
	})
}

func (nc *NewsController) GetTrendingNews(c *gin.Context) {
	news, err := nc.service.Trending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve trending news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Trending news retrieved successfully",
		"data":    news,
	})
}

// GetNewsByID returns one article. Reading a published article also
// persists a view increment, so the returned views already include this
// read.
func (nc *NewsController) GetNewsByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	article, err := nc.service.Get(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

func (nc *NewsController) GetRelatedNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	related, err := nc.service.Related(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve related news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Related news retrieved successfully",
		"data":    related,
	})
}

func (nc *NewsController) CreateNews(c *gin.Context) {
	var input models.NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := nc.service.Create(&input, c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

func (nc *NewsController) UpdateNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var updates models.NewsUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := nc.service.Update(uint(id), &updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// ReorderNews bulk-rewrites display_order values from the admin dashboard's
// drag-and-drop ordering.
func (nc *NewsController) ReorderNews(c *gin.Context) {
	var body struct {
		Articles []models.NewsOrder `json:"articles" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Articles must be an array",
			"error":   err.Error(),
		})
		return
	}

	count, err := nc.service.Reorder(body.Articles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reorder news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "News order updated successfully",
		"data":    gin.H{"count": count},
	})
}

// DeleteNews is idempotent: deleting an id that is already gone succeeds.
func (nc *NewsController) DeleteNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.service.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// ExtractImage derives a displayable image URL from a YouTube, Facebook or
// direct image URL for the admin article form.
func (nc *NewsController) ExtractImage(c *gin.Context) {
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

	thumb, err := nc.extractor.ExtractThumbnail(c.Request.Context(), body.URL)
	if err != nil {
		if errors.Is(err, extractor.ErrUnsupportedURL) || errors.Is(err, extractor.ErrExtractionFailed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Could not extract image from URL",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to extract image URL",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image URL extracted successfully",
		"data":    thumb,
	})
}
