package pointset

// DuplicatePolicy controls what Insert does with a point whose coordinates
// are already present in the set.
type DuplicatePolicy int

const (
	// KeepAll appends every insertion to the sequence and lets the newest
	// insertion win the coordinate index. The sequence can therefore hold
	// duplicate coordinates while reverse lookup resolves to the last one.
	// This is the historical behavior and the default.
	KeepAll DuplicatePolicy = iota

	// SkipDuplicates drops an insertion whose coordinates are already
	// indexed: the sequence and the index stay in one-to-one
	// correspondence and the first insertion keeps its position.
	SkipDuplicates
)

type options struct {
	duplicatePolicy DuplicatePolicy
}

// Option configures PointSet construction.
type Option func(*options)

// WithDuplicatePolicy sets the duplicate handling policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *options) {
		o.duplicatePolicy = p
	}
}
