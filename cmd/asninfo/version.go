package main

import (
	"fmt"
	"runtime"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

// versionInfo is the JSON form of the version command.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// version prints the version information.
func (a *app) version() error {
	info := versionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if a.format == "json" {
		return a.writeJSON(info)
	}

	fmt.Fprintf(a.stdout, "asninfo version %s\n", info.Version)
	fmt.Fprintf(a.stdout, "  Commit:     %s\n", info.Commit)
	fmt.Fprintf(a.stdout, "  Built:      %s\n", info.BuildDate)
	fmt.Fprintf(a.stdout, "  Go version: %s\n", info.GoVersion)
	fmt.Fprintf(a.stdout, "  OS/Arch:    %s\n", info.Platform)
	return nil
}
