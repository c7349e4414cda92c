package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xriskon/librarian/internal/library"
)

func TestClient_Search_Movie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Movie Name", r.URL.Query().Get("query"))
		assert.Equal(t, "2020", r.URL.Query().Get("primary_release_year"))
		assert.Equal(t, "true", r.URL.Query().Get("include_adult"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":603},{"id":604}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	ids, err := client.Search(context.Background(), "Movie Name", 2020, library.KindMovie)

	require.NoError(t, err)
	assert.Equal(t, []int64{603, 604}, ids)
}

func TestClient_Search_ShowUsesTVEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/tv", r.URL.Path)
		assert.Equal(t, "2015", r.URL.Query().Get("first_air_date_year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	ids, err := client.Search(context.Background(), "Show Name", 2015, library.KindShow)

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestClient_Images(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/603/images", r.URL.Path)
		assert.Equal(t, "en,null", r.URL.Query().Get("include_image_language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posters":[{"file_path":"/p1.jpg"},{"file_path":"/p2.jpg"}],"backdrops":[{"file_path":"/b1.jpg"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	set, err := client.Images(context.Background(), 603, library.KindMovie)

	require.NoError(t, err)
	require.Len(t, set.Posters, 2)
	assert.Equal(t, "/p1.jpg", set.Posters[0].FilePath)
	require.Len(t, set.Backdrops, 1)
}

func TestClient_Videos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/1399/videos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"type":"Trailer","name":"Official Trailer","size":1080,"key":"abc123"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	videos, err := client.Videos(context.Background(), 1399, library.KindShow)

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Trailer", videos[0].Type)
	assert.Equal(t, "abc123", videos[0].Key)
}

func TestClient_Find(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/603", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","release_date":"1999-03-30"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	title, err := client.Find(context.Background(), 603, library.KindMovie)

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", title.Name())
	assert.Equal(t, 1999, title.Year())
}

func TestClient_Find_ShowUsesNameField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/1399", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1399,"name":"Game of Thrones","first_air_date":"2011-04-17"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	title, err := client.Find(context.Background(), 1399, library.KindShow)

	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", title.Name())
	assert.Equal(t, 2011, title.Year())
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Find(context.Background(), 999999, library.KindMovie)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "anything", 0, library.KindMovie)
	assert.Error(t, err)
}

func TestClient_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Videos(context.Background(), 1, library.KindMovie)
	assert.Error(t, err)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/original/p1.jpg", ImageURL("/p1.jpg"))
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", WatchURL("abc123"))
}
