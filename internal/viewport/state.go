package viewport

// State is the most recent width measurement.
// Ready is false only until the first measurement has been published.
type State struct {
	Ready bool
	Width int
}
