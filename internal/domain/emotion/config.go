package emotion

// Config holds runtime knobs for the classification domain.
type Config struct {
	// Strategy is the default algorithm used when a request does not
	// name one.
	Strategy Strategy
	// MinValence and MaxValence bound the sane valence range enforced
	// by the service. Validation is skipped when MinValence >= MaxValence.
	MinValence float64
	MaxValence float64
}
