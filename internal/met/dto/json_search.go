package dto

import "github.com/handiism/art-exposure/internal/model"

// JSONSearchResult is the response of the collection search endpoint.
//
// The API answers {"total":0,"objectIDs":null} when nothing matches.
type JSONSearchResult struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// ToCandidateSet converts the result to a model.CandidateSet, dropping
// duplicate IDs while keeping the API order.
func (r *JSONSearchResult) ToCandidateSet() model.CandidateSet {
	seen := make(map[int]struct{}, len(r.ObjectIDs))
	set := make(model.CandidateSet, 0, len(r.ObjectIDs))
	for _, id := range r.ObjectIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set
}
