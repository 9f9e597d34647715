package repository

import (
	"sort"

	"newvision/internal/filestore"
	"newvision/internal/models"

	"gorm.io/gorm"
)

const facebookPostsFile = "facebookPosts.json"

type FacebookPostRepository interface {
	FindAll() ([]models.FacebookPost, error)
	Create(post *models.FacebookPost) error
	Delete(id uint) error
}

type facebookPostRepository struct {
	db *gorm.DB
}

func NewFacebookPostRepository(db *gorm.DB) FacebookPostRepository {
	return &facebookPostRepository{db: db}
}

func (r *facebookPostRepository) FindAll() ([]models.FacebookPost, error) {
	var posts []models.FacebookPost
	err := r.db.Order("added_at DESC").Find(&posts).Error
	return posts, err
}

func (r *facebookPostRepository) Create(post *models.FacebookPost) error {
	return r.db.Create(post).Error
}

func (r *facebookPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.FacebookPost{}, id).Error
}

type fileFacebookPostRepository struct {
	store *filestore.Store
}

func NewFileFacebookPostRepository(store *filestore.Store) (FacebookPostRepository, error) {
	if err := store.Init(facebookPostsFile, []models.FacebookPost{}); err != nil {
		return nil, err
	}
	return &fileFacebookPostRepository{store: store}, nil
}

func (r *fileFacebookPostRepository) FindAll() ([]models.FacebookPost, error) {
	var posts []models.FacebookPost
	if err := r.store.Read(facebookPostsFile, &posts); err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].AddedAt.After(posts[j].AddedAt)
	})
	return posts, nil
}

func (r *fileFacebookPostRepository) Create(post *models.FacebookPost) error {
	var posts []models.FacebookPost
	return r.store.Update(facebookPostsFile, &posts, func() (bool, error) {
		var max uint
		for _, p := range posts {
			if p.ID > max {
				max = p.ID
			}
		}
		post.ID = max + 1
		posts = append(posts, *post)
		return true, nil
	})
}

func (r *fileFacebookPostRepository) Delete(id uint) error {
	var posts []models.FacebookPost
	return r.store.Update(facebookPostsFile, &posts, func() (bool, error) {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		posts = kept
		return true, nil
	})
}
