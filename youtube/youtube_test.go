package youtube

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sangam-music/sangam/models"
)

const searchFixture = `{
  "items": [
    {
      "id": {"videoId": "vid123"},
      "snippet": {"title": "Tum Hi Ho Official Video", "channelTitle": "T-Series"}
    }
  ]
}`

const videosFixture = `{
  "items": [
    {
      "id": "vid123",
      "snippet": {
        "title": "Tum Hi Ho Official Video",
        "channelTitle": "T-Series",
        "publishedAt": "2013-04-08T00:00:00Z",
        "thumbnails": {
          "high": {"url": "https://i.ytimg.com/vi/vid123/hq.jpg"},
          "medium": {"url": "https://i.ytimg.com/vi/vid123/mq.jpg"},
          "default": {"url": "https://i.ytimg.com/vi/vid123/default.jpg"}
        }
      },
      "contentDetails": {"duration": "PT4M22S"}
    }
  ]
}`

func TestSearch_NoAPIKey(t *testing.T) {
	t.Parallel()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	c := NewClient("")
	c.SearchURL = ts.URL + "/search"
	c.VideosURL = ts.URL + "/videos"

	got, err := c.Search("Arijit Singh", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected no songs, got %v", got)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no upstream calls, got %d", calls)
	}
}

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			if got := r.URL.Query().Get("q"); got != "Arijit Singh hindi bollywood songs" {
				t.Errorf("unexpected query %q", got)
			}
			if got := r.URL.Query().Get("videoCategoryId"); got != "10" {
				t.Errorf("unexpected category %q", got)
			}
			if got := r.URL.Query().Get("regionCode"); got != "IN" {
				t.Errorf("unexpected region %q", got)
			}
			fmt.Fprint(w, searchFixture)
		case "/videos":
			if got := r.URL.Query().Get("id"); got != "vid123" {
				t.Errorf("unexpected batched ids %q", got)
			}
			if got := r.URL.Query().Get("part"); got != "snippet,contentDetails,statistics" {
				t.Errorf("unexpected part %q", got)
			}
			fmt.Fprint(w, videosFixture)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := NewClient("key123")
	c.SearchURL = ts.URL + "/search"
	c.VideosURL = ts.URL + "/videos"

	want := []models.Song{
		{
			Title:     "Tum Hi Ho",
			Artist:    "Arijit Singh",
			YoutubeID: "vid123",
			Thumbnail: "https://i.ytimg.com/vi/vid123/hq.jpg",
			Year:      "2013",
			Duration:  "4:22",
			Source:    "youtube",
			PlayURL:   "https://www.youtube.com/watch?v=vid123",
			EmbedURL:  "https://www.youtube.com/embed/vid123?autoplay=1",
		},
	}
	got, err := c.Search("Arijit Singh", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestSearch_NoResultsSkipsDetailCall(t *testing.T) {
	t.Parallel()
	var detailCalls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			fmt.Fprint(w, `{"items": []}`)
		case "/videos":
			atomic.AddInt32(&detailCalls, 1)
			fmt.Fprint(w, `{"items": []}`)
		}
	}))
	defer ts.Close()

	c := NewClient("key123")
	c.SearchURL = ts.URL + "/search"
	c.VideosURL = ts.URL + "/videos"

	got, err := c.Search("Arijit Singh", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected no songs, got %v", got)
	}
	if atomic.LoadInt32(&detailCalls) != 0 {
		t.Errorf("expected the detail call to be skipped, got %d calls", detailCalls)
	}
}

func TestSearch_UpstreamFailure(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := NewClient("key123")
	c.SearchURL = ts.URL + "/search"
	c.VideosURL = ts.URL + "/videos"

	got, err := c.Search("Arijit Singh", 10)
	if err == nil {
		t.Fatal("expected an error from a failed search")
	}
	if got != nil {
		t.Errorf("expected no songs, got %v", got)
	}
}

func TestSearchMood_Success(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("maxResults"); got != "8" {
			t.Errorf("unexpected maxResults %q", got)
		}
		fmt.Fprint(w, `{
		  "items": [
		    {
		      "id": {"videoId": "vid456"},
		      "snippet": {
		        "title": "Happy Songs Mix Full Video",
		        "channelTitle": "Bollywood Hits",
		        "publishedAt": "2020-01-15T00:00:00Z",
		        "thumbnails": {"medium": {"url": "https://i.ytimg.com/vi/vid456/mq.jpg"}}
		      }
		    }
		  ]
		}`)
	}))
	defer ts.Close()

	c := NewClient("key123")
	c.SearchURL = ts.URL + "/search"
	c.VideosURL = ts.URL + "/videos"

	want := []models.Song{
		{
			Title:     "Happy Songs Mix",
			Artist:    "Bollywood Hits",
			YoutubeID: "vid456",
			Thumbnail: "https://i.ytimg.com/vi/vid456/mq.jpg",
			Year:      "2020",
			Duration:  "4:30",
			Source:    "youtube",
			PlayURL:   "https://www.youtube.com/watch?v=vid456",
			EmbedURL:  "https://www.youtube.com/embed/vid456?autoplay=1",
		},
	}
	got, err := c.SearchMood("bollywood happy songs dance")
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		iso  string
		want string
	}{
		{"PT4M20S", "4:20"},
		{"PT1H2M3S", "62:03"},
		{"PT2M", "2:00"},
		{"PT50S", "0:50"},
		{"PT3H", "180:00"},
		{"garbage", "4:20"},
		{"", "4:20"},
	}
	for _, tc := range cases {
		if got := parseDuration(tc.iso); got != tc.want {
			t.Errorf("parseDuration(%q) = %q, want %q", tc.iso, got, tc.want)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()
	cases := []struct {
		title string
		want  string
	}{
		{"Song Title Official Video", "Song Title"},
		{"Song Title [Official Video]", "Song Title []"},
		{"Tum Hi Ho Full Video", "Tum Hi Ho"},
		{"Plain Title", "Plain Title"},
	}
	for _, tc := range cases {
		if got := cleanTitle(tc.title); got != tc.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestBestThumbnail(t *testing.T) {
	t.Parallel()
	full := thumbnails{
		Maxres:  thumbnail{URL: "max"},
		High:    thumbnail{URL: "high"},
		Medium:  thumbnail{URL: "medium"},
		Default: thumbnail{URL: "default"},
	}
	if got := bestThumbnail(full); got != "max" {
		t.Errorf("expected maxres tier, got %q", got)
	}
	if got := bestThumbnail(thumbnails{Medium: thumbnail{URL: "medium"}}); got != "medium" {
		t.Errorf("expected medium tier, got %q", got)
	}
	if got := bestThumbnail(thumbnails{}); got != "" {
		t.Errorf("expected empty thumbnail, got %q", got)
	}
}
