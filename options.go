package leadstream

import (
	"github.com/leadstream/leadstream/pkg/leads"
)

// DefaultPath is the backing file used when no path is configured.
const DefaultPath = "leads_data.csv"

// Option is a function that configures a Client instance
type Option func(*options)

// options holds the configured state for a client.
type options struct {
	path  string
	table *leads.Table
}

// defaults returns the default options.
func defaults() *options {
	return &options{path: DefaultPath}
}

// apply runs the given options over the defaults.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPath configures the backing CSV file path.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithTable configures an initial in-memory table and disables
// persistence. Useful for tests and embedding.
func WithTable(table *leads.Table) Option {
	return func(o *options) {
		o.table = table
	}
}
