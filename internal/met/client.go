package met

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/handiism/art-exposure/internal/errors"
	"github.com/handiism/art-exposure/internal/http"
	"github.com/handiism/art-exposure/internal/met/dto"
	"github.com/handiism/art-exposure/internal/model"
)

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Client queries the collection API.
//
// Example usage:
//
//	client := NewClient(http.NewClient(0, ""), DefaultBaseURL)
//
//	ids, err := client.Search(ctx, "sunflowers", true)
//	if err != nil {
//	    return err
//	}
//	art, err := client.Object(ctx, ids[0])
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a Client using httpClient for transport. An empty
// baseURL falls back to DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchURL builds the search endpoint URL for query.
func (c *Client) SearchURL(query string, hasImages bool) string {
	params := url.Values{}
	params.Set("q", query)
	if hasImages {
		params.Set("hasImages", "true")
	}
	return c.baseURL + "/search?" + params.Encode()
}

// ObjectURL builds the object endpoint URL for id.
func (c *Client) ObjectURL(id int) string {
	return fmt.Sprintf("%s/objects/%d", c.baseURL, id)
}

// Search returns the object IDs matching query.
//
// An empty result is not an error; the returned set is empty.
// Any transport or decoding failure is an errors.KindSearch error.
func (c *Client) Search(ctx context.Context, query string, hasImages bool) (model.CandidateSet, error) {
	var result dto.JSONSearchResult
	if err := c.http.GetJSON(ctx, c.SearchURL(query, hasImages), &result); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.Wrap(apperrors.KindSearch, err, "searching for %q", query)
	}
	return result.ToCandidateSet(), nil
}

// Object returns the record of one collection object.
//
// Any transport or decoding failure is an errors.KindLookup error, so a
// selector treats it as a missed attempt. Context cancellation is returned
// unclassified.
func (c *Client) Object(ctx context.Context, id int) (model.Artwork, error) {
	var obj dto.JSONObject
	if err := c.http.GetJSON(ctx, c.ObjectURL(id), &obj); err != nil {
		if ctx.Err() != nil {
			return model.Artwork{}, ctx.Err()
		}
		return model.Artwork{}, apperrors.Wrap(apperrors.KindLookup, err, "getting object %d", id)
	}
	if obj.ObjectID == 0 {
		obj.ObjectID = id
	}
	return obj.ToArtwork(), nil
}
