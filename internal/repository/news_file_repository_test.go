package repository

import (
	"os"
	"path/filepath"
	"testing"

	"newvision/internal/filestore"
	"newvision/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileRepo(t *testing.T) NewsRepository {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	repo, err := NewFileNewsRepository(store)
	require.NoError(t, err)
	return repo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestFileRepoCreateAllocatesIDsAndOrder(t *testing.T) {
	repo := setupFileRepo(t)

	first := &models.News{Title: "first", Content: "c", Published: true}
	require.NoError(t, repo.Create(first))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, 0, first.DisplayOrder)

	second := &models.News{Title: "second", Content: "c", Published: true}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, 1, second.DisplayOrder)

	// max+1 allocation reuses the ID of a deleted tail record.
	require.NoError(t, repo.Delete(2))
	third := &models.News{Title: "third", Content: "c", Published: true}
	require.NoError(t, repo.Create(third))
	assert.Equal(t, uint(2), third.ID)
}

func TestFileRepoFlashInvariantOnCreate(t *testing.T) {
	repo := setupFileRepo(t)

	a := &models.News{Title: "A", Content: "c", Published: true, FlashNews: true}
	require.NoError(t, repo.Create(a))
	b := &models.News{Title: "B", Content: "c", Published: true, FlashNews: true}
	require.NoError(t, repo.Create(b))

	all, err := repo.FindAll()
	require.NoError(t, err)

	flashed := 0
	for _, n := range all {
		if n.FlashNews {
			flashed++
			assert.Equal(t, b.ID, n.ID)
		}
	}
	assert.Equal(t, 1, flashed)
}

func TestFileRepoFlashInvariantOnUpdate(t *testing.T) {
	repo := setupFileRepo(t)

	a := &models.News{Title: "A", Content: "c", Published: true, FlashNews: true}
	require.NoError(t, repo.Create(a))
	b := &models.News{Title: "B", Content: "c", Published: true}
	require.NoError(t, repo.Create(b))

	updated, err := repo.Update(b.ID, &models.NewsUpdate{FlashNews: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.FlashNews)

	prev, err := repo.FindByID(a.ID)
	require.NoError(t, err)
	assert.False(t, prev.FlashNews)
}

func TestFileRepoPartialUpdate(t *testing.T) {
	repo := setupFileRepo(t)

	article := &models.News{Title: "Title", Content: "Content", Category: "Sports", Published: true}
	require.NoError(t, repo.Create(article))

	updated, err := repo.Update(article.ID, &models.NewsUpdate{Title: strPtr("New title")})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Content", updated.Content)
	assert.Equal(t, "Sports", updated.Category)
	assert.True(t, updated.Published)
	assert.True(t, updated.UpdatedAt.After(article.UpdatedAt) || updated.UpdatedAt.Equal(article.UpdatedAt))
}

func TestFileRepoUpdateUnknownID(t *testing.T) {
	repo := setupFileRepo(t)

	_, err := repo.Update(99, &models.NewsUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepoIncrementViewsPersists(t *testing.T) {
	repo := setupFileRepo(t)

	article := &models.News{Title: "T", Content: "C", Published: true}
	require.NoError(t, repo.Create(article))

	views, err := repo.IncrementViews(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	views, err = repo.IncrementViews(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, views)

	stored, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Views)
}

func TestFileRepoDeleteIsIdempotent(t *testing.T) {
	repo := setupFileRepo(t)

	article := &models.News{Title: "T", Content: "C", Published: true}
	require.NoError(t, repo.Create(article))

	require.NoError(t, repo.Delete(article.ID))
	require.NoError(t, repo.Delete(article.ID))

	_, err := repo.FindByID(article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepoSetDisplayOrder(t *testing.T) {
	repo := setupFileRepo(t)

	a := &models.News{Title: "A", Content: "c", Published: true}
	b := &models.News{Title: "B", Content: "c", Published: true}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	count, err := repo.SetDisplayOrder([]models.NewsOrder{
		{ID: a.ID, DisplayOrder: 5},
		{ID: b.ID, DisplayOrder: 2},
		{ID: 99, DisplayOrder: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored, err := repo.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.DisplayOrder)
}

func TestFileRepoBackfillsLegacyRecords(t *testing.T) {
	dir := t.TempDir()

	// A record written before the flag fields existed.
	legacy := `[{"id":1,"title":"Old","content":"c","published":true,"createdAt":"2020-01-01T00:00:00Z","updatedAt":"2020-01-01T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "news.json"), []byte(legacy), 0o644))

	store, err := filestore.New(dir)
	require.NoError(t, err)
	repo, err := NewFileNewsRepository(store)
	require.NoError(t, err)

	article, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.False(t, article.FlashNews)
	assert.False(t, article.Featured)
	assert.False(t, article.Trending)
	assert.Equal(t, 0, article.Views)

	// Backfill is lazy: the stored file is untouched by reads.
	raw, err := os.ReadFile(filepath.Join(dir, "news.json"))
	require.NoError(t, err)
	assert.Equal(t, legacy, string(raw))
}
