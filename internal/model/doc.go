// Package model defines the core data structures used throughout
// art-exposure.
//
// # Artwork
//
// Artwork is the record resolved from one collection object:
//
//	art := model.Artwork{ObjectID: 436535, Title: "Wheat Field with Cypresses", Artist: "Vincent van Gogh"}
//	if art.HasImage() {
//	    fmt.Println(art.ImageURL)
//	}
//
// # CandidateSet
//
// CandidateSet holds the object IDs returned by a search. The selector draws
// from it at random until it finds an Artwork with an image.
package model
