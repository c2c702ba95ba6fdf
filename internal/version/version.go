package version

// Version is set at build time with
// -ldflags "-X github.com/wallarm/paramgen/internal/version.Version=<version>".
var Version = "unknown"
