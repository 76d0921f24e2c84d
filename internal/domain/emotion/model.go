package emotion

import "time"

// Reading is a single intraday valence observation. Input slices are
// not assumed to be sorted; chronological order is established via At.
type Reading struct {
	At      time.Time `json:"time"`
	Valence float64   `json:"valence"`
}

// Request captures one day's readings plus an optional strategy
// override. An empty Strategy falls back to the configured default.
type Request struct {
	Readings []Reading `json:"readings"`
	Strategy Strategy  `json:"strategy,omitempty"`
}

// Response is returned to callers and serialized by the CLI.
type Response struct {
	Strategy     Strategy `json:"strategy"`
	Category     Category `json:"category"`
	ReadingCount int      `json:"readingCount"`
	Tally        Tally    `json:"tally"`
}

// Tally holds the discretizer output for a day: how many readings fell
// into each cluster and each category.
type Tally struct {
	Clusters   map[Cluster]int  `json:"clusters"`
	Categories map[Category]int `json:"categories"`
}

// NewTally discretizes every reading. Valence values must already be
// validated; ClusterOf is total so no error path exists here.
func NewTally(readings []Reading) Tally {
	t := Tally{
		Clusters:   make(map[Cluster]int, len(clusterOrder)),
		Categories: make(map[Category]int, 3),
	}
	for _, r := range readings {
		c := ClusterOf(r.Valence)
		t.Clusters[c]++
		t.Categories[c.Category()]++
	}
	return t
}
