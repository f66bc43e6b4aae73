package expression

import (
	"os"
	"strconv"
)

// DebugLog is switched on by CONFIGLANG_DEBUG. Debug output always goes to
// stderr so that results on stdout stay machine readable.
var DebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("CONFIGLANG_DEBUG")); v && err == nil {
		DebugLog = true
	}
}
