package system

import (
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "vincode",
})

// SetLevel applies a textual level ("debug", "info", "warn", "error").
// Unknown values leave the current level untouched and return false.
func SetLevel(level string) bool {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return false
	}
	Logger.SetLevel(lvl)
	return true
}
