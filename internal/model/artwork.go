package model

import "fmt"

// Artwork represents one object of the museum collection.
//
// Only Title, Artist and ImageURL take part in the wallpaper pipeline.
// Date and ObjectURL are kept for reporting.
//
// An Artwork with an empty ImageURL is valid to decode but unusable: many
// collection objects have no public primary image.
type Artwork struct {
	// ObjectID is the collection identifier the record was resolved from.
	ObjectID int

	// Title is the artwork title. May be empty.
	Title string

	// Artist is the display name of the artist. Often empty for
	// anonymous works.
	Artist string

	// ImageURL points to the full-size primary image.
	// Empty string means no image is available.
	ImageURL string

	// Date is the free-text object date, e.g. "ca. 1872".
	Date string

	// ObjectURL is the public web page of the object.
	ObjectURL string
}

// HasImage returns true if the artwork has a primary image to download.
func (a Artwork) HasImage() bool {
	return a.ImageURL != ""
}

// FileName returns the unsanitized output name "<artist> - <title>.png".
func (a Artwork) FileName() string {
	return a.Artist + " - " + a.Title + ".png"
}

// String implements fmt.Stringer.
func (a Artwork) String() string {
	return fmt.Sprintf("%s - %s (#%d)", a.Artist, a.Title, a.ObjectID)
}

// CandidateSet is the ordered list of object IDs returned by a search.
// It is not modified after it has been fetched.
type CandidateSet []int

// Len returns the number of candidates.
func (c CandidateSet) Len() int {
	return len(c)
}

// Empty reports whether the set has no candidates.
func (c CandidateSet) Empty() bool {
	return len(c) == 0
}
