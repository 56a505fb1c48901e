package dataset

import (
	"math"
	"math/rand"
)

// Split is a disjoint partition of the corpus into training and
// validation compositions. Each composition appears in exactly one
// side; the triples (events, style, progress) stay aligned because a
// composition carries all three.
type Split struct {
	Train []*Composition
	Val   []*Composition
}

// SplitCorpus shuffles a permutation of the corpus indices and holds
// out the last ceil(len * fraction) as validation. Fails with
// InsufficientDataError if either side would be empty.
func SplitCorpus(corpus *Corpus, fraction float64, rng *rand.Rand) (*Split, error) {
	n := corpus.Len()
	if n == 0 {
		return nil, &InsufficientDataError{Context: "corpus has no usable compositions"}
	}

	numVal := int(math.Ceil(float64(n) * fraction))
	if numVal == 0 {
		return nil, &InsufficientDataError{Context: "validation set would be empty"}
	}
	if numVal >= n {
		return nil, &InsufficientDataError{Context: "training set would be empty"}
	}

	perm := rng.Perm(n)
	split := &Split{
		Train: make([]*Composition, 0, n-numVal),
		Val:   make([]*Composition, 0, numVal),
	}
	for _, i := range perm[:n-numVal] {
		split.Train = append(split.Train, corpus.Compositions[i])
	}
	for _, i := range perm[n-numVal:] {
		split.Val = append(split.Val, corpus.Compositions[i])
	}
	return split, nil
}
