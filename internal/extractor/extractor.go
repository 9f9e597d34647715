package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors so callers can tell "we do not know this URL shape" apart
// from "we tried every strategy and none produced a thumbnail".
var (
	ErrUnsupportedURL   = errors.New("unsupported URL type: provide a YouTube video URL or a Facebook post/photo URL")
	ErrExtractionFailed = errors.New("could not extract thumbnail")
)

type Thumbnail struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	SourceType   string `json:"sourceType"`
	OriginalURL  string `json:"originalUrl"`
}

type VideoDetails struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

var (
	youtubeIDPattern    = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|watch\?v=|&v=)([^#&?]*)`)
	directImagePattern  = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|bmp|svg)(\?.*)?$`)
	facebookHostPattern = regexp.MustCompile(`(?i)(facebook\.com|fb\.com|fb\.watch)`)
	youtubeHostPattern  = regexp.MustCompile(`(?i)(youtube\.com|youtu\.be)`)

	fbidPattern      = regexp.MustCompile(`[?&](?:fbid|story_fbid)=(\d+)`)
	photoPhpPattern  = regexp.MustCompile(`photo\.php\?.*[?&]fbid=(\d+)`)
	permalinkPattern = regexp.MustCompile(`permalink\.php\?.*[?&]story_fbid=(\d+)`)
	postsPathPattern = regexp.MustCompile(`/(?:posts|photos)/(\d+)`)

	postsIDPattern = regexp.MustCompile(`/posts/(\d+)`)
	queryIDPattern = regexp.MustCompile(`[?&](?:story_fbid|id)=(\d+)`)

	metaDescriptionPattern   = regexp.MustCompile(`<meta name="description" content="([^"]+)"`)
	jsonLdDescriptionPattern = regexp.MustCompile(`"description":"([^"]+)"`)
)

// Extractor derives displayable image URLs and video metadata from
// third-party content URLs. It is stateless: every call re-runs the
// fallback chain, nothing is cached. Endpoint bases are fields so tests can
// point them at a local server.
type Extractor struct {
	httpClient *http.Client

	youtubeOEmbedURL       string
	youtubeImageURL        string
	youtubeWatchURL        string
	facebookVideoOEmbedURL string
	facebookPostOEmbedURL  string
	facebookGraphURL       string
}

func New() *Extractor {
	return &Extractor{
		// Outbound lookups are best-effort; a few seconds is all they get.
		httpClient:             &http.Client{Timeout: 5 * time.Second},
		youtubeOEmbedURL:       "https://www.youtube.com/oembed",
		youtubeImageURL:        "https://img.youtube.com/vi",
		youtubeWatchURL:        "https://www.youtube.com/watch",
		facebookVideoOEmbedURL: "https://www.facebook.com/plugins/video/oembed.json",
		facebookPostOEmbedURL:  "https://www.facebook.com/plugins/post/oembed.json",
		facebookGraphURL:       "https://graph.facebook.com",
	}
}

// YouTubeID pulls the 11 character video id out of watch, short-link and
// embed URL shapes. Empty string when the URL carries no id.
func YouTubeID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[1]) != 11 {
		return ""
	}
	return match[1]
}

func IsDirectImageURL(url string) bool {
	return directImagePattern.MatchString(url) || strings.Contains(url, "data:image")
}

func IsYouTubeURL(url string) bool {
	return youtubeHostPattern.MatchString(url)
}

func IsFacebookURL(url string) bool {
	return facebookHostPattern.MatchString(url)
}

// FacebookPostID extracts a numeric post or photo id from the common
// Facebook URL shapes, falling back to the URL itself when none matches.
func FacebookPostID(url string) string {
	if u, err := neturl.Parse(url); err == nil {
		if fbid := u.Query().Get("story_fbid"); fbid != "" {
			return fbid
		}
	}
	if m := postsIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := queryIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return url
}

// ExtractThumbnail walks the strategy chain described in the admin UI docs:
// direct image URLs pass through, YouTube URLs get a thumbnail tier with an
// oEmbed availability check, Facebook URLs run through oEmbed and Graph
// lookups. A failing strategy never aborts the chain, only exhaustion does.
func (e *Extractor) ExtractThumbnail(ctx context.Context, url string) (*Thumbnail, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty URL", ErrUnsupportedURL)
	}

	if IsDirectImageURL(url) {
		return &Thumbnail{ThumbnailURL: url, SourceType: "image", OriginalURL: url}, nil
	}

	if IsYouTubeURL(url) {
		id := YouTubeID(url)
		if id == "" {
			return nil, fmt.Errorf("%w: no video id in YouTube URL", ErrUnsupportedURL)
		}
		return &Thumbnail{
			ThumbnailURL: e.youtubeThumbnail(ctx, url, id),
			SourceType:   "youtube",
			OriginalURL:  url,
		}, nil
	}

	if IsFacebookURL(url) {
		thumb := e.facebookThumbnail(ctx, url)
		if thumb == "" {
			return nil, fmt.Errorf("%w from Facebook URL:\n%s", ErrExtractionFailed, facebookRemediation(url))
		}
		return &Thumbnail{ThumbnailURL: thumb, SourceType: "facebook", OriginalURL: url}, nil
	}

	return nil, ErrUnsupportedURL
}

// youtubeThumbnail prefers the maxresdefault tier, lets a successful oEmbed
// lookup override it with whatever YouTube reports as current, and degrades
// to hqdefault when the lookup fails (maxresdefault is not rendered for
// every upload).
func (e *Extractor) youtubeThumbnail(ctx context.Context, url, videoID string) string {
	var meta oembedResponse
	lookup := fmt.Sprintf("%s?url=%s&format=json", e.youtubeOEmbedURL, neturl.QueryEscape(url))
	if err := e.getJSON(ctx, lookup, &meta); err != nil {
		return fmt.Sprintf("%s/%s/hqdefault.jpg", e.youtubeImageURL, videoID)
	}
	if meta.ThumbnailURL != "" {
		return meta.ThumbnailURL
	}
	return fmt.Sprintf("%s/%s/maxresdefault.jpg", e.youtubeImageURL, videoID)
}

func (e *Extractor) facebookThumbnail(ctx context.Context, url string) string {
	// Strategy 1: video oEmbed, only worth trying for video-ish URLs.
	if strings.Contains(url, "video") || strings.Contains(url, "watch") {
		var meta oembedResponse
		lookup := fmt.Sprintf("%s?url=%s", e.facebookVideoOEmbedURL, neturl.QueryEscape(url))
		if err := e.getJSON(ctx, lookup, &meta); err == nil && meta.ThumbnailURL != "" {
			return meta.ThumbnailURL
		}
	}

	// Strategy 2: numeric photo/post id plus a Graph picture lookup.
	if photoID := facebookPhotoID(url); photoID != "" {
		if thumb := e.graphPicture(ctx, photoID); thumb != "" {
			return thumb
		}
	}

	// Strategy 3: generic post oEmbed.
	if !strings.Contains(url, "photo") {
		var meta oembedResponse
		lookup := fmt.Sprintf("%s?url=%s", e.facebookPostOEmbedURL, neturl.QueryEscape(url))
		if err := e.getJSON(ctx, lookup, &meta); err == nil && meta.ThumbnailURL != "" {
			return meta.ThumbnailURL
		}
	}

	return ""
}

func facebookPhotoID(url string) string {
	for _, p := range []*regexp.Regexp{fbidPattern, photoPhpPattern, permalinkPattern, postsPathPattern} {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

type graphPictureResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Picture string `json:"picture"`
	URL     string `json:"url"`
}

func (e *Extractor) graphPicture(ctx context.Context, photoID string) string {
	var resp graphPictureResponse
	lookup := fmt.Sprintf("%s/%s/picture?type=large&redirect=false", e.facebookGraphURL, photoID)
	if err := e.getJSON(ctx, lookup, &resp); err == nil {
		switch {
		case resp.Data.URL != "":
			return resp.Data.URL
		case resp.Picture != "":
			return resp.Picture
		case resp.URL != "":
			return resp.URL
		}
	}

	// Without redirect=false the endpoint 302s straight to the image; hand
	// the redirect target (or the Graph URL itself) to the browser.
	redirectURL := fmt.Sprintf("%s/%s/picture?type=large", e.facebookGraphURL, photoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, redirectURL, nil)
	if err != nil {
		return redirectURL
	}
	client := &http.Client{
		Timeout: e.httpClient.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp2, err := client.Do(req)
	if err != nil {
		return redirectURL
	}
	defer resp2.Body.Close()
	if resp2.StatusCode >= 300 && resp2.StatusCode < 400 {
		if loc := resp2.Header.Get("Location"); loc != "" {
			return loc
		}
	}
	return redirectURL
}

func facebookRemediation(url string) string {
	msg := "This may be due to:\n" +
		"1. The post/photo privacy settings (private posts require authentication)\n" +
		"2. Facebook API limitations (requires access token for many requests)\n" +
		"3. Invalid or unsupported URL format\n\n" +
		"Recommended solutions:\n" +
		"- Right-click on the Facebook image, choose \"Copy image address\" and paste that URL\n" +
		"- Use a YouTube video URL instead (thumbnails work reliably)\n" +
		"- Upload the image to an image hosting service"
	if photoID := facebookPhotoID(url); photoID != "" {
		msg += fmt.Sprintf("\n\nDetected Photo ID: %s (may require a Facebook access token)", photoID)
	}
	return msg
}

// ExtractVideoDetails resolves a YouTube URL into title, description and
// thumbnail. Title and thumbnail come from oEmbed, the description from the
// watch page's meta tags; each lookup is best-effort.
func (e *Extractor) ExtractVideoDetails(ctx context.Context, url string) (*VideoDetails, error) {
	videoID := YouTubeID(url)
	if videoID == "" {
		return nil, fmt.Errorf("%w: not a YouTube video URL", ErrUnsupportedURL)
	}

	details := &VideoDetails{
		Title:        "Untitled Video",
		ThumbnailURL: fmt.Sprintf("%s/%s/hqdefault.jpg", e.youtubeImageURL, videoID),
	}

	var meta oembedResponse
	lookup := fmt.Sprintf("%s?url=%s&format=json", e.youtubeOEmbedURL, neturl.QueryEscape(url))
	if err := e.getJSON(ctx, lookup, &meta); err == nil {
		if meta.Title != "" {
			details.Title = meta.Title
		}
		if meta.ThumbnailURL != "" {
			details.ThumbnailURL = meta.ThumbnailURL
		}
	}

	details.Description = e.videoPageDescription(ctx, videoID)
	return details, nil
}

func (e *Extractor) videoPageDescription(ctx context.Context, videoID string) string {
	pageURL := fmt.Sprintf("%s?v=%s", e.youtubeWatchURL, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ""
	}

	if m := metaDescriptionPattern.FindSubmatch(body); m != nil {
		return string(m[1])
	}
	if m := jsonLdDescriptionPattern.FindSubmatch(body); m != nil {
		raw := string(m[1])
		if unquoted, err := strconv.Unquote(`"` + raw + `"`); err == nil {
			return unquoted
		}
		return raw
	}
	return ""
}

type oembedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (e *Extractor) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lookup %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
