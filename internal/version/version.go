// Package version carries build metadata injected with -ldflags.
package version

// AppVersion is overridden at build time:
//
//	go build -ldflags "-X vincode/internal/version.AppVersion=v0.3.0"
var AppVersion = "dev"
