package bracecheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed (findings do not change the status)
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration, flags or encoding
	ExitInputUnreadable = 11 // Input file missing, unreadable or undecodable
	ExitImbalanced      = 12 // Braces unbalanced and --fail-on-imbalance was set
)

const (
	// DefaultContextWidth is the number of characters of text preceding an
	// opening brace that are kept as its context. When the stripped prefix is
	// longer, only its trailing characters are kept.
	DefaultContextWidth = 50

	// DefaultEncoding is the text encoding assumed for input files.
	DefaultEncoding = "utf-8"

	// ColorAuto enables colour only when stdout is a terminal.
	ColorAuto = "auto"
	// ColorOn always enables colour.
	ColorOn = "on"
	// ColorOff never enables colour.
	ColorOff = "off"
)
