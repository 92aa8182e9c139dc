package testutil

import "go.uber.org/goleak"

// LeakOptions ignores goroutines that were already running when the test
// started, including the stats worker the Spanner client's opencensus
// dependency launches at init.
func LeakOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
		goleak.IgnoreCurrent(),
	}
}
