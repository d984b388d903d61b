package buildinfo

var (
	// Version is injected via ldflags at build time.
	Version = "dev"
	// Commit is injected via ldflags at build time.
	Commit = "none"
	// Date is injected via ldflags at build time.
	Date = "unknown"
)
