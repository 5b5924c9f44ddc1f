package glide

// Wrap maps any position onto [0, n). It returns 0 when n is not positive.
func Wrap(position, n int) int {
	if n <= 0 {
		return 0
	}
	return ((position % n) + n) % n
}

// At returns the element of seq at position, wrapping in both directions.
// Position -1 on a five element sequence resolves to index 4, position 7 to
// index 2. An empty sequence yields ErrEmptySequence.
func At[T any](seq []T, position int) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return seq[Wrap(position, len(seq))], nil
}

// mustAt is At for sequences already checked to be non-empty.
func mustAt[T any](seq []T, position int) T {
	return seq[Wrap(position, len(seq))]
}
