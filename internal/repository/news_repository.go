package repository

import (
	"errors"
	"time"

	"newvision/internal/models"

	"gorm.io/gorm"
)

type NewsRepository interface {
	FindAll() ([]models.News, error)
	FindByID(id uint) (*models.News, error)
	Create(article *models.News) error
	Update(id uint, updates *models.NewsUpdate) (*models.News, error)
	Delete(id uint) error
	IncrementViews(id uint) (int, error)
	SetDisplayOrder(orders []models.NewsOrder) (int, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) FindAll() ([]models.News, error) {
	var news []models.News
	err := r.db.Find(&news).Error
	return news, err
}

func (r *newsRepository) FindByID(id uint) (*models.News, error) {
	var article models.News
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create assigns the next display_order and inserts the article. When the
// new article is flash news, every other flash flag is cleared in the same
// transaction so the collection never holds two flashed articles.
func (r *newsRepository) Create(article *models.News) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		row := tx.Model(&models.News{}).Select("COALESCE(MAX(display_order), -1)").Row()
		if err := row.Scan(&maxOrder); err != nil {
			return err
		}
		article.DisplayOrder = maxOrder + 1

		if err := tx.Create(article).Error; err != nil {
			return err
		}
		if article.FlashNews {
			return tx.Model(&models.News{}).
				Where("id <> ?", article.ID).
				Update("flash_news", false).Error
		}
		return nil
	})
}

func (r *newsRepository) Update(id uint, updates *models.NewsUpdate) (*models.News, error) {
	var article models.News
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&article, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if updates.FlashNews != nil && *updates.FlashNews {
			if err := tx.Model(&models.News{}).
				Where("id <> ?", id).
				Update("flash_news", false).Error; err != nil {
				return err
			}
		}

		fields := updateColumns(updates)
		fields["updated_at"] = time.Now().UTC()
		if err := tx.Model(&article).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&article, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// updateColumns translates the camelCase partial payload into snake_case
// column assignments, skipping absent fields.
func updateColumns(u *models.NewsUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.YoutubeURL != nil {
		fields["youtube_url"] = *u.YoutubeURL
	}
	if u.FacebookURL != nil {
		fields["facebook_url"] = *u.FacebookURL
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Published != nil {
		fields["published"] = *u.Published
	}
	if u.FlashNews != nil {
		fields["flash_news"] = *u.FlashNews
	}
	if u.Featured != nil {
		fields["featured"] = *u.Featured
	}
	if u.Trending != nil {
		fields["trending"] = *u.Trending
	}
	if u.Views != nil {
		fields["views"] = *u.Views
	}
	if u.DisplayOrder != nil {
		fields["display_order"] = *u.DisplayOrder
	}
	return fields
}

// Delete is idempotent: removing an id that is already gone is a success.
func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}

func (r *newsRepository) IncrementViews(id uint) (int, error) {
	result := r.db.Model(&models.News{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	var article models.News
	if err := r.db.Select("views").First(&article, id).Error; err != nil {
		return 0, err
	}
	return article.Views, nil
}

func (r *newsRepository) SetDisplayOrder(orders []models.NewsOrder) (int, error) {
	updated := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			result := tx.Model(&models.News{}).
				Where("id = ?", o.ID).
				Updates(map[string]interface{}{
					"display_order": o.DisplayOrder,
					"updated_at":    time.Now().UTC(),
				})
			if result.Error != nil {
				return result.Error
			}
			updated += int(result.RowsAffected)
		}
		return nil
	})
	return updated, err
}
