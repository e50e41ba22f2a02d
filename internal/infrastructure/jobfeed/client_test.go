package jobfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-guide/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFeed_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[
			{"id":"j1","title":"Go Developer","company":"Acme","required_skills":["Golang"],"source":"RapidAPI"},
			{"title":"Data Analyst","company":"Beta"},
			{"title":"  ","company":"Ghost"}
		]}`))
	}))
	defer srv.Close()

	f := NewFeed(srv.URL+"/", time.Second, 0, nil)
	require.NotNil(t, f)

	got, err := f.Search(context.Background(), Query{Keywords: "go developer", Location: "Remote", Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Contains(t, gotQuery, "q=go+developer")
	assert.Contains(t, gotQuery, "location=Remote")
	assert.Contains(t, gotQuery, "limit=5")
	assert.NotContains(t, gotQuery, "type=")

	assert.Equal(t, "j1", got[0].ID)
	assert.Equal(t, "RapidAPI", got[0].Source)
	assert.True(t, strings.HasPrefix(got[1].ID, "feed-"))
	assert.Equal(t, f.Name(), got[1].Source)
}

func TestHTTPFeed_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL, time.Second, 0, nil).Search(context.Background(), Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestHTTPFeed_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL, time.Second, 0, nil).Search(context.Background(), Query{})
	assert.Error(t, err)
}

func TestHTTPFeed_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer srv.Close()

	f := NewFeed(srv.URL, time.Second, 0.001, nil)
	_, err := f.Search(context.Background(), Query{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = f.Search(ctx, Query{})
	assert.Error(t, err)
}

func TestNewFeeds(t *testing.T) {
	assert.Nil(t, NewFeed("  ", time.Second, 1, nil))

	feeds := NewFeeds(config.JobFeedConfig{URLs: []string{"http://a.local", "https://b.local/api"}}, nil)
	require.Len(t, feeds, 2)
	assert.Equal(t, "a.local", feeds[0].Name())
	assert.Equal(t, "b.local", feeds[1].Name())
}
