package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/costaindustries-source/mac-cleaner/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/costaindustries-source/mac-cleaner/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/costaindustries-source/mac-cleaner/internal/version.Date={{.Date}}
)
