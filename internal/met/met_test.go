package met

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/handiism/art-exposure/internal/errors"
	apphttp "github.com/handiism/art-exposure/internal/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(apphttp.NewClient(0, ""), srv.URL+"/")
}

func TestClient_SearchURL(t *testing.T) {
	c := NewClient(nil, "")

	tests := []struct {
		name      string
		query     string
		hasImages bool
		want      string
	}{
		{"plain", "Impressionism", false, DefaultBaseURL + "/search?q=Impressionism"},
		{"spaces", "van gogh", false, DefaultBaseURL + "/search?q=van+gogh"},
		{"reserved", "a&b=c", false, DefaultBaseURL + "/search?q=a%26b%3Dc"},
		{"has images", "monet", true, DefaultBaseURL + "/search?hasImages=true&q=monet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SearchURL(tt.query, tt.hasImages); got != tt.want {
				t.Errorf("SearchURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_Search(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []int
	}{
		{"results", `{"total":3,"objectIDs":[436535,437133,436535]}`, []int{436535, 437133}},
		{"no results", `{"total":0,"objectIDs":null}`, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("path = %q, want /search", r.URL.Path)
				}
				if q := r.URL.Query().Get("q"); q != "sunflowers" {
					t.Errorf("q = %q, want %q", q, "sunflowers")
				}
				fmt.Fprint(w, tt.body)
			})

			ids, err := c.Search(context.Background(), "sunflowers", false)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if fmt.Sprint([]int(ids)) != fmt.Sprint(tt.wantIDs) {
				t.Errorf("Search() = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestClient_Search_Failure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "anything", false)
	if apperrors.KindOf(err) != apperrors.KindSearch {
		t.Fatalf("Search() error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindSearch)
	}
	if apperrors.IsRetryable(err) {
		t.Error("search failures must not be retryable")
	}
}

func TestClient_Object(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/objects/436535":
			fmt.Fprint(w, `{
				"objectID": 436535,
				"title": "Wheat Field with Cypresses",
				"artistDisplayName": "Vincent van Gogh",
				"primaryImage": "https://images.metmuseum.org/CRDImages/ep/original/DT1567.jpg",
				"primaryImageSmall": "https://images.metmuseum.org/CRDImages/ep/web-large/DT1567.jpg",
				"objectDate": "1889",
				"objectURL": "https://www.metmuseum.org/art/collection/search/436535"
			}`)
		case "/objects/1":
			fmt.Fprint(w, `{"objectID":1,"title":"Coin","artistDisplayName":"","primaryImage":""}`)
		case "/objects/2":
			fmt.Fprint(w, `{"objectID":`)
		default:
			http.NotFound(w, r)
		}
	})

	art, err := c.Object(context.Background(), 436535)
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if art.Artist != "Vincent van Gogh" || art.Title != "Wheat Field with Cypresses" {
		t.Errorf("Object() = %+v", art)
	}
	if !strings.HasSuffix(art.ImageURL, "original/DT1567.jpg") {
		t.Errorf("ImageURL = %q, want the full-size image", art.ImageURL)
	}

	art, err = c.Object(context.Background(), 1)
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if art.HasImage() {
		t.Error("object without primaryImage should have no image")
	}

	for _, id := range []int{2, 404} {
		_, err := c.Object(context.Background(), id)
		if !errors.Is(err, apperrors.ErrLookup) {
			t.Errorf("Object(%d) error = %v, want lookup error", id, err)
		}
		if !apperrors.IsRetryable(err) {
			t.Errorf("Object(%d) error should be retryable", id)
		}
	}
}
