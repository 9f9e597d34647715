package services

import (
	"sort"
	"strings"
	"time"

	"newvision/internal/models"
	"newvision/internal/repository"
)

const (
	excerptLength     = 150
	trendingLimit     = 5
	relatedLimit      = 4
	relatedWordMinLen = 4
)

// NewsService owns the article lifecycle rules: creation defaults, partial
// update semantics, the published-gated view increment and the public
// listing queries. The single-flash invariant itself is committed by the
// repository so it stays atomic with the triggering write.
type NewsService struct {
	repo repository.NewsRepository
}

func NewNewsService(repo repository.NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// NewsFilter carries the raw public query parameters. The boolean filters
// only apply when the query value is literally "true".
type NewsFilter struct {
	Search    string
	Category  string
	Featured  string
	Trending  string
	FlashNews string
}

func (s *NewsService) Create(input *models.NewsInput, author string) (*models.News, error) {
	now := time.Now().UTC()

	published := true
	if input.Published != nil {
		published = *input.Published
	}
	category := input.Category
	if category == "" {
		category = "General"
	}
	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(input.Content)
	}

	article := &models.News{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     excerpt,
		ImageURL:    input.ImageURL,
		YoutubeURL:  input.YoutubeURL,
		FacebookURL: input.FacebookURL,
		Category:    category,
		Author:      author,
		Published:   published,
		FlashNews:   input.FlashNews,
		Featured:    input.Featured,
		Trending:    input.Trending,
		Views:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

func (s *NewsService) Update(id uint, updates *models.NewsUpdate) (*models.News, error) {
	return s.repo.Update(id, updates)
}

// Get returns the article and, when it is published, persists a view
// increment before returning. Reading a published article is deliberately
// a write: the trending listing ranks by these counters.
func (s *NewsService) Get(id uint) (*models.News, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if article.Published {
		views, err := s.repo.IncrementViews(id)
		if err != nil {
			return nil, err
		}
		article.Views = views
	}
	return article, nil
}

// Query applies the public listing filters: published only, exact category
// ("All" is a wildcard), case-insensitive substring search over title,
// content, excerpt and category, and the boolean flags. Results come back
// in display_order ascending, missing orders sorting as 0.
func (s *NewsService) Query(filter NewsFilter) ([]models.News, error) {
	news, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	results := make([]models.News, 0, len(news))
	search := strings.ToLower(filter.Search)
	for _, n := range news {
		if !n.Published {
			continue
		}
		if filter.Category != "" && filter.Category != "All" && n.Category != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(&n, search) {
			continue
		}
		if filter.Featured == "true" && !n.Featured {
			continue
		}
		if filter.Trending == "true" && !n.Trending {
			continue
		}
		if filter.FlashNews == "true" && !n.FlashNews {
			continue
		}
		results = append(results, n)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DisplayOrder < results[j].DisplayOrder
	})
	return results, nil
}

func matchesSearch(n *models.News, search string) bool {
	return strings.Contains(strings.ToLower(n.Title), search) ||
		strings.Contains(strings.ToLower(n.Content), search) ||
		strings.Contains(strings.ToLower(n.Excerpt), search) ||
		strings.Contains(strings.ToLower(n.Category), search)
}

// Flash returns the current flash article, or nil when nothing is flashed.
func (s *NewsService) Flash() (*models.News, error) {
	news, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range news {
		if news[i].FlashNews && news[i].Published {
			return &news[i], nil
		}
	}
	return nil, nil
}

func (s *NewsService) Featured() ([]models.News, error) {
	news, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	featured := make([]models.News, 0)
	for _, n := range news {
		if n.Featured && n.Published {
			featured = append(featured, n)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].CreatedAt.After(featured[j].CreatedAt)
	})
	return featured, nil
}

func (s *NewsService) Trending() ([]models.News, error) {
	news, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	trending := make([]models.News, 0)
	for _, n := range news {
		if n.Trending && n.Published {
			trending = append(trending, n)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Views > trending[j].Views
	})
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	return trending, nil
}

// Related finds up to four other published articles sharing the anchor's
// category, or whose title contains any word of the anchor's title longer
// than four characters. A loose match on purpose: no scoring, no stemming.
func (s *NewsService) Related(id uint) ([]models.News, error) {
	anchor, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	news, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	anchorWords := titleWords(anchor.Title)
	related := make([]models.News, 0)
	for _, n := range news {
		if n.ID == anchor.ID || !n.Published {
			continue
		}
		if n.Category == anchor.Category || titleOverlaps(anchorWords, n.Title) {
			related = append(related, n)
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].CreatedAt.After(related[j].CreatedAt)
	})
	if len(related) > relatedLimit {
		related = related[:relatedLimit]
	}
	return related, nil
}

func titleWords(title string) []string {
	words := make([]string, 0)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if len(w) > relatedWordMinLen {
			words = append(words, w)
		}
	}
	return words
}

func titleOverlaps(anchorWords []string, title string) bool {
	lower := strings.ToLower(title)
	for _, w := range anchorWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func (s *NewsService) Reorder(orders []models.NewsOrder) (int, error) {
	return s.repo.SetDisplayOrder(orders)
}

func (s *NewsService) Delete(id uint) error {
	return s.repo.Delete(id)
}
