package devsly

import (
	"fmt"
	"runtime"
)

// Version is the SDK release version, reported in the User-Agent
// header of every request.
const Version = "0.3.0"

func defaultUserAgent() string {
	return fmt.Sprintf("devsly-go/%s (%s; %s)", Version, runtime.GOOS, runtime.Version())
}
