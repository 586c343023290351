// Package http provides the HTTP client used to talk to the collection API
// and to download artwork images.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - JSON decoding of API responses
//   - In-memory downloads with progress tracking
//
// # Basic Usage
//
//	client := http.NewClient(60*time.Second, "")
//
//	var result dto.JSONSearchResult
//	err := client.GetJSON(ctx, "https://collectionapi.metmuseum.org/public/collection/v1/search?q=monet", &result)
//
//	data, err := client.DownloadBytes(ctx, imageURL, nil)
//
// Non-200 responses are reported as *StatusError.
package http
