// Package met provides access to the Metropolitan Museum of Art public
// collection API.
//
// Two endpoints are used:
//
//  1. search, which turns a free-text query into a list of object IDs
//  2. objects/{id}, which returns the record of one object
//
// # Searching
//
//	client := met.NewClient(httpClient, met.DefaultBaseURL)
//	candidates, err := client.Search(ctx, "Impressionism", false)
//
// # Resolving Objects
//
//	art, err := client.Object(ctx, 436535)
//	if art.HasImage() {
//	    fmt.Println(art.ImageURL)
//	}
//
// Search failures are classified as errors.KindSearch. Object failures,
// including unknown IDs, are errors.KindLookup so that the selector can
// move on to another candidate.
package met
