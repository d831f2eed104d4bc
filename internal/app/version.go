package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/fpvlvr/esclavizador/internal/app.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
