package workflow

import "github.com/aretw0/tweetflow/pkg/domain"

type options struct {
	name                string
	exactSchedule       bool
	withoutEmptyAccount bool
}

func defaultOptions() options {
	return options{name: domain.DefaultWorkflowName}
}

// Option configures a Pipeline.
type Option func(*options)

// WithName overrides the document name.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithExactSchedule distinguishes "twice-daily" (every 12 hours) and "weekly"
// (every week). By default every frequency other than "hourly" maps to the
// same daily rule.
func WithExactSchedule() Option {
	return func(o *options) {
		o.exactSchedule = true
	}
}

// WithoutEmptyAccounts drops empty entries from the target account list
// ("a,,b" yields ["a","b"] instead of ["a","","b"]).
func WithoutEmptyAccounts() Option {
	return func(o *options) {
		o.withoutEmptyAccount = true
	}
}
