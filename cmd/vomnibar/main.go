// Command vomnibar is a keyboard-driven omnibox for URLs, searches and history.
package main

import "github.com/bnema/vomnibar/internal/cli/cmd"

// Build information set via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
