package repository

import (
	"sort"

	"newvision/internal/filestore"
	"newvision/internal/models"

	"gorm.io/gorm"
)

const videosFile = "videos.json"

type VideoRepository interface {
	FindAll() ([]models.Video, error)
	Create(video *models.Video) error
	Delete(id uint) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) FindAll() ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Order("added_at DESC").Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Video{}, id).Error
}

type fileVideoRepository struct {
	store *filestore.Store
}

func NewFileVideoRepository(store *filestore.Store) (VideoRepository, error) {
	if err := store.Init(videosFile, []models.Video{}); err != nil {
		return nil, err
	}
	return &fileVideoRepository{store: store}, nil
}

func (r *fileVideoRepository) FindAll() ([]models.Video, error) {
	var videos []models.Video
	if err := r.store.Read(videosFile, &videos); err != nil {
		return nil, err
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].AddedAt.After(videos[j].AddedAt)
	})
	return videos, nil
}

func (r *fileVideoRepository) Create(video *models.Video) error {
	var videos []models.Video
	return r.store.Update(videosFile, &videos, func() (bool, error) {
		var max uint
		for _, v := range videos {
			if v.ID > max {
				max = v.ID
			}
		}
		video.ID = max + 1
		videos = append(videos, *video)
		return true, nil
	})
}

func (r *fileVideoRepository) Delete(id uint) error {
	var videos []models.Video
	return r.store.Update(videosFile, &videos, func() (bool, error) {
		kept := videos[:0]
		for _, v := range videos {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		videos = kept
		return true, nil
	})
}
