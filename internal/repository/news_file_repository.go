package repository

import (
	"time"

	"newvision/internal/filestore"
	"newvision/internal/models"
)

const newsFile = "news.json"

// fileNewsRepository keeps all articles in a single JSON array file. Legacy
// records that predate the flag fields decode to false/0 zero values, which
// is exactly the lazy backfill the read path needs; storage is never
// rewritten just to add defaults.
type fileNewsRepository struct {
	store *filestore.Store
}

func NewFileNewsRepository(store *filestore.Store) (NewsRepository, error) {
	if err := store.Init(newsFile, []models.News{}); err != nil {
		return nil, err
	}
	return &fileNewsRepository{store: store}, nil
}

func (r *fileNewsRepository) FindAll() ([]models.News, error) {
	var news []models.News
	if err := r.store.Read(newsFile, &news); err != nil {
		return nil, err
	}
	return news, nil
}

func (r *fileNewsRepository) FindByID(id uint) (*models.News, error) {
	news, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range news {
		if news[i].ID == id {
			return &news[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileNewsRepository) Create(article *models.News) error {
	var news []models.News
	return r.store.Update(newsFile, &news, func() (bool, error) {
		article.ID = nextID(news)
		article.DisplayOrder = nextDisplayOrder(news)
		if article.FlashNews {
			for i := range news {
				news[i].FlashNews = false
			}
		}
		news = append(news, *article)
		return true, nil
	})
}

func (r *fileNewsRepository) Update(id uint, updates *models.NewsUpdate) (*models.News, error) {
	var news []models.News
	var updated *models.News
	err := r.store.Update(newsFile, &news, func() (bool, error) {
		idx := -1
		for i := range news {
			if news[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return false, ErrNotFound
		}

		if updates.FlashNews != nil && *updates.FlashNews {
			for i := range news {
				if i != idx {
					news[i].FlashNews = false
				}
			}
		}
		applyUpdate(&news[idx], updates)
		news[idx].UpdatedAt = time.Now().UTC()

		copied := news[idx]
		updated = &copied
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyUpdate(article *models.News, u *models.NewsUpdate) {
	if u.Title != nil {
		article.Title = *u.Title
	}
	if u.Content != nil {
		article.Content = *u.Content
	}
	if u.Excerpt != nil {
		article.Excerpt = *u.Excerpt
	}
	if u.ImageURL != nil {
		article.ImageURL = *u.ImageURL
	}
	if u.YoutubeURL != nil {
		article.YoutubeURL = *u.YoutubeURL
	}
	if u.FacebookURL != nil {
		article.FacebookURL = *u.FacebookURL
	}
	if u.Category != nil {
		article.Category = *u.Category
	}
	if u.Published != nil {
		article.Published = *u.Published
	}
	if u.FlashNews != nil {
		article.FlashNews = *u.FlashNews
	}
	if u.Featured != nil {
		article.Featured = *u.Featured
	}
	if u.Trending != nil {
		article.Trending = *u.Trending
	}
	if u.Views != nil {
		article.Views = *u.Views
	}
	if u.DisplayOrder != nil {
		article.DisplayOrder = *u.DisplayOrder
	}
}

func (r *fileNewsRepository) Delete(id uint) error {
	var news []models.News
	return r.store.Update(newsFile, &news, func() (bool, error) {
		kept := news[:0]
		for _, n := range news {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		news = kept
		return true, nil
	})
}

func (r *fileNewsRepository) IncrementViews(id uint) (int, error) {
	var news []models.News
	views := 0
	err := r.store.Update(newsFile, &news, func() (bool, error) {
		for i := range news {
			if news[i].ID == id {
				news[i].Views++
				views = news[i].Views
				return true, nil
			}
		}
		return false, ErrNotFound
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}

func (r *fileNewsRepository) SetDisplayOrder(orders []models.NewsOrder) (int, error) {
	var news []models.News
	updated := 0
	err := r.store.Update(newsFile, &news, func() (bool, error) {
		now := time.Now().UTC()
		for _, o := range orders {
			for i := range news {
				if news[i].ID == o.ID {
					news[i].DisplayOrder = o.DisplayOrder
					news[i].UpdatedAt = now
					updated++
					break
				}
			}
		}
		return updated > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
