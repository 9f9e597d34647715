package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(serverURL string) *Extractor {
	return &Extractor{
		httpClient:             &http.Client{Timeout: 2 * time.Second},
		youtubeOEmbedURL:       serverURL + "/oembed",
		youtubeImageURL:        serverURL + "/vi",
		youtubeWatchURL:        serverURL + "/watch",
		facebookVideoOEmbedURL: serverURL + "/fb/video/oembed.json",
		facebookPostOEmbedURL:  serverURL + "/fb/post/oembed.json",
		facebookGraphURL:       serverURL + "/graph",
	}
}

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"id not eleven chars", "https://www.youtube.com/watch?v=short", ""},
		{"no id at all", "https://www.youtube.com/feed/subscriptions", ""},
		{"not youtube", "https://example.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeID(tt.url))
		})
	}
}

func TestIsDirectImageURL(t *testing.T) {
	assert.True(t, IsDirectImageURL("https://cdn.example.com/pic.jpg"))
	assert.True(t, IsDirectImageURL("https://cdn.example.com/pic.PNG"))
	assert.True(t, IsDirectImageURL("https://cdn.example.com/pic.webp?w=200"))
	assert.True(t, IsDirectImageURL("data:image/png;base64,iVBOR"))
	assert.False(t, IsDirectImageURL("https://cdn.example.com/pic.pdf"))
	assert.False(t, IsDirectImageURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
}

func TestFacebookPostID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"story_fbid param", "https://www.facebook.com/permalink.php?story_fbid=123456&id=789", "123456"},
		{"posts path", "https://www.facebook.com/somepage/posts/987654321", "987654321"},
		{"id param", "https://www.facebook.com/photo.php?id=555", "555"},
		{"no id falls back to url", "https://www.facebook.com/somepage", "https://www.facebook.com/somepage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FacebookPostID(tt.url))
		})
	}
}

func TestExtractThumbnailDirectImage(t *testing.T) {
	e := New()
	thumb, err := e.ExtractThumbnail(context.Background(), "https://cdn.example.com/photo.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpeg", thumb.ThumbnailURL)
	assert.Equal(t, "image", thumb.SourceType)
	assert.Equal(t, "https://cdn.example.com/photo.jpeg", thumb.OriginalURL)
}

func TestExtractThumbnailYouTubeUsesOEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oembed" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Clip","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/custom.jpg"}`))
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	thumb, err := e.ExtractThumbnail(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/custom.jpg", thumb.ThumbnailURL)
	assert.Equal(t, "youtube", thumb.SourceType)
}

func TestExtractThumbnailYouTubeFallsBackToHQDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	thumb, err := e.ExtractThumbnail(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/vi/dQw4w9WgXcQ/hqdefault.jpg", thumb.ThumbnailURL)
	assert.Equal(t, "youtube", thumb.SourceType)
}

func TestExtractThumbnailFacebookVideoOEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fb/video/oembed.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"thumbnail_url":"https://scontent.example.com/video-thumb.jpg"}`))
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	thumb, err := e.ExtractThumbnail(context.Background(), "https://www.facebook.com/watch/?v=123")
	require.NoError(t, err)
	assert.Equal(t, "https://scontent.example.com/video-thumb.jpg", thumb.ThumbnailURL)
	assert.Equal(t, "facebook", thumb.SourceType)
}

func TestExtractThumbnailFacebookGraphPicture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graph/456789/picture" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"url":"https://scontent.example.com/photo-large.jpg"}}`))
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	thumb, err := e.ExtractThumbnail(context.Background(), "https://www.facebook.com/photo.php?fbid=456789")
	require.NoError(t, err)
	assert.Equal(t, "https://scontent.example.com/photo-large.jpg", thumb.ThumbnailURL)
	assert.Equal(t, "facebook", thumb.SourceType)
}

func TestExtractThumbnailFacebookExhaustedStrategies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	_, err := e.ExtractThumbnail(context.Background(), "https://www.facebook.com/somepage/photo")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractThumbnailUnsupportedURL(t *testing.T) {
	e := New()

	_, err := e.ExtractThumbnail(context.Background(), "https://example.com/article")
	assert.ErrorIs(t, err, ErrUnsupportedURL)

	_, err = e.ExtractThumbnail(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnsupportedURL)

	// Watch-style paths on other hosts are not treated as YouTube.
	_, err = e.ExtractThumbnail(context.Background(), "https://example.com/watch?v=dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}

func TestExtractThumbnailYouTubeURLWithoutVideoID(t *testing.T) {
	e := New()

	_, err := e.ExtractThumbnail(context.Background(), "https://www.youtube.com/feed/subscriptions")
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}

func TestExtractVideoDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oembed":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title":"Harbour Opening","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg"}`))
		case "/watch":
			w.Write([]byte(`<html><head><meta name="description" content="The harbour reopens after repairs."></head></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	details, err := e.ExtractVideoDetails(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Harbour Opening", details.Title)
	assert.Equal(t, "The harbour reopens after repairs.", details.Description)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg", details.ThumbnailURL)
}

func TestExtractVideoDetailsDefaultsWhenLookupsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	e := newTestExtractor(srv.URL)
	details, err := e.ExtractVideoDetails(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Video", details.Title)
	assert.Empty(t, details.Description)
	assert.Equal(t, srv.URL+"/vi/dQw4w9WgXcQ/hqdefault.jpg", details.ThumbnailURL)
}

func TestExtractVideoDetailsRejectsNonYouTube(t *testing.T) {
	e := New()
	_, err := e.ExtractVideoDetails(context.Background(), "https://vimeo.com/12345")
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}
