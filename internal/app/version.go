package app

import "strings"

// Build metadata, overridden with
// -ldflags "-X github.com/heartmarshall/deeplisten-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports Version followed by whichever of Commit and BuildTime
// were stamped into the binary.
func BuildVersion() string {
	var extra []string
	if Commit != "" {
		extra = append(extra, "commit "+Commit)
	}
	if BuildTime != "" {
		extra = append(extra, "built "+BuildTime)
	}
	if len(extra) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extra, ", ") + ")"
}
