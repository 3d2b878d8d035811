package processor

type Option func(*ChromaRemover)

// Tolerance is the per-channel distance (0..1) still treated as background.
func Tolerance(t float64) Option {
	return func(r *ChromaRemover) {
		if t >= 0 && t <= 1 {
			r.tolerance = t
		}
	}
}

// Feather softens the cut-out edge; 0 gives a hard edge.
func Feather(sigma float64) Option {
	return func(r *ChromaRemover) {
		if sigma >= 0 {
			r.feather = sigma
		}
	}
}
