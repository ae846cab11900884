package alertfeed

import "time"

// Entry represents one unauthorized-capture image deposited by the external
// detection process.
type Entry struct {
	Filename   string    // Name of the image file
	CapturedAt time.Time // File modification time, used as capture time
	Path       string    // URL path the image is served under
}

// Feed defines the interface for listing alert entries
type Feed interface {
	// List returns all alert entries sorted descending by capture time.
	// A missing directory yields an empty list, not an error.
	List() ([]Entry, error)
}
