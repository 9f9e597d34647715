package repository

import (
	"newvision/internal/filestore"
	"newvision/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingsFile = "settings.json"

// SettingsRepository exposes the site configuration as one flat string map.
// The row backend stores key/value rows, the file backend a single JSON
// object; updates merge into what is already stored.
type SettingsRepository interface {
	Get() (map[string]string, error)
	Update(values map[string]string) (map[string]string, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

func (r *settingsRepository) Update(values map[string]string) (map[string]string, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			row := models.Setting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get()
}

type fileSettingsRepository struct {
	store *filestore.Store
}

func NewFileSettingsRepository(store *filestore.Store) (SettingsRepository, error) {
	if err := store.Init(settingsFile, models.DefaultSettings()); err != nil {
		return nil, err
	}
	return &fileSettingsRepository{store: store}, nil
}

func (r *fileSettingsRepository) Get() (map[string]string, error) {
	settings := map[string]string{}
	if err := r.store.Read(settingsFile, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *fileSettingsRepository) Update(values map[string]string) (map[string]string, error) {
	settings := map[string]string{}
	err := r.store.Update(settingsFile, &settings, func() (bool, error) {
		for key, value := range values {
			settings[key] = value
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}
