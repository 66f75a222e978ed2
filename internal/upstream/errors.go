package upstream

import "errors"

// ErrShapeMismatch is returned when the upstream service answers with a
// different number of vectors than texts were submitted. The caller must
// treat this exactly like a transport failure; no partial mapping is ever
// guessed.
var ErrShapeMismatch = errors.New("upstream: embedding count does not match input count")
