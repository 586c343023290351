package dto

import (
	"strings"

	"github.com/handiism/art-exposure/internal/model"
)

// JSONObject represents the subset of a collection object record used by
// art-exposure.
type JSONObject struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectDate        string `json:"objectDate"`
	ObjectURL         string `json:"objectURL"`
	IsPublicDomain    bool   `json:"isPublicDomain"`
}

// ToArtwork converts JSONObject to a model.Artwork.
//
// Only the full-size primaryImage counts as an image; primaryImageSmall is
// too small to be used as a wallpaper.
func (jo *JSONObject) ToArtwork() model.Artwork {
	return model.Artwork{
		ObjectID:  jo.ObjectID,
		Title:     strings.TrimSpace(jo.Title),
		Artist:    strings.TrimSpace(jo.ArtistDisplayName),
		ImageURL:  strings.TrimSpace(jo.PrimaryImage),
		Date:      jo.ObjectDate,
		ObjectURL: jo.ObjectURL,
	}
}
