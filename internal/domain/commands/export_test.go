package commands

import "time"

// HasModel exports hasModel for testing.
var HasModel = hasModel //nolint:gochecknoglobals // test export

// WithClock replaces the clock used to timestamp run directories.
func (it *AnalyzeCommand) WithClock(clock func() time.Time) *AnalyzeCommand {
	it.clock = clock
	return it
}
