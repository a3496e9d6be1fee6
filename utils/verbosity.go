package utils

import "fmt"

// Verbosity controls how much progress chatter the tools print. It is
// passed explicitly by callers rather than read from ambient state.
type Verbosity int

const (
	Silent   Verbosity = 0 // fatal errors only
	Minimal  Verbosity = 1 // start/end markers
	Progress Verbosity = 2
	Summary  Verbosity = 3 // progress plus result summary
	Full     Verbosity = 5
)

// DefaultVerbosity is substituted for out-of-range requests.
const DefaultVerbosity = Progress

// CheckVerbosity clamps v to the recognised 0-5 range. Out-of-range values
// warn and fall back to the default instead of failing the call.
func CheckVerbosity(v int) Verbosity {
	if v < int(Silent) || v > int(Full) {
		fmt.Printf("Warning: verbosity %d is not in range 0-5, resetting to %d\n", v, int(DefaultVerbosity))
		return DefaultVerbosity
	}
	return Verbosity(v)
}
