// Package selector resolves a random collection object that has a usable
// image.
//
// The collection API indexes many objects without a public primary image.
// The Selector draws candidates uniformly at random, with replacement, and
// stops at the first record that has an image or when the attempt budget is
// spent.
//
//	sel := selector.New(selector.NewRandomSource(time.Now().UnixNano()), 20)
//	art, err := sel.Resolve(ctx, candidates, client.Object)
//	if errors.Is(err, apperrors.ErrExhausted) {
//	    // nothing usable within 20 attempts
//	}
package selector

import (
	"context"
	"math/rand/v2"

	apperrors "github.com/handiism/art-exposure/internal/errors"
	"github.com/handiism/art-exposure/internal/model"
)

// DefaultMaxTries is the attempt budget used when none is configured.
const DefaultMaxTries = 20

// RandomSource picks indexes in [0, bound).
type RandomSource interface {
	NextIndex(bound int) int
}

type pcgSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource backed by a seeded PCG generator.
func NewRandomSource(seed int64) RandomSource {
	return &pcgSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (s *pcgSource) NextIndex(bound int) int {
	return s.rng.IntN(bound)
}

// Lookup resolves one object ID to its record. Failures that should only
// cost one attempt must be classified as apperrors.KindLookup.
type Lookup func(ctx context.Context, id int) (model.Artwork, error)

// Attempt describes one draw of the selection loop.
type Attempt struct {
	// N is the 1-based attempt number.
	N int

	// ObjectID is the candidate that was drawn.
	ObjectID int

	// Err is the retryable lookup failure, if any.
	Err error

	// Missing is true when the lookup succeeded but the record has no image.
	Missing bool
}

// Selector runs the bounded random resolution loop.
type Selector struct {
	rand     RandomSource
	maxTries int

	// OnAttempt, when set, is called after every unsuccessful attempt.
	OnAttempt func(Attempt)
}

// New creates a Selector drawing from src with the given attempt budget.
func New(src RandomSource, maxTries int) *Selector {
	return &Selector{rand: src, maxTries: maxTries}
}

// MaxTries returns the attempt budget.
func (s *Selector) MaxTries() int {
	return s.maxTries
}

// Resolve draws candidates until lookup returns an Artwork with an image.
//
// Each draw, including one whose lookup fails with a retryable error, uses
// one attempt. The same ID may be drawn more than once.
//
// Returns:
//   - the first Artwork with a non-empty ImageURL
//   - an apperrors.KindExhausted error when candidates is empty, the budget
//     is not positive, or every attempt missed
//   - any non-retryable lookup error or context error unchanged
func (s *Selector) Resolve(ctx context.Context, candidates model.CandidateSet, lookup Lookup) (model.Artwork, error) {
	if candidates.Empty() {
		return model.Artwork{}, apperrors.New(apperrors.KindExhausted, "search returned no objects")
	}

	for n := 1; n <= s.maxTries; n++ {
		if err := ctx.Err(); err != nil {
			return model.Artwork{}, err
		}

		id := candidates[s.rand.NextIndex(candidates.Len())]

		art, err := lookup(ctx, id)
		if err != nil {
			if !apperrors.IsRetryable(err) {
				return model.Artwork{}, err
			}
			s.report(Attempt{N: n, ObjectID: id, Err: err})
			continue
		}

		if art.HasImage() {
			return art, nil
		}
		s.report(Attempt{N: n, ObjectID: id, Missing: true})
	}

	return model.Artwork{}, apperrors.New(apperrors.KindExhausted, "no object with an image after %d attempts", max(s.maxTries, 0))
}

func (s *Selector) report(a Attempt) {
	if s.OnAttempt != nil {
		s.OnAttempt(a)
	}
}
