package errors

// Error codes for the Pebble toolchain.
// These codes are used in diagnostics printed by the CLI, the REPL and the
// language server so the same failure is identified the same way everywhere.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors

const (
	// Parser errors (reserved range: E0100-E0199)

	// E0100: Input does not match the grammar
	ErrorSyntax = "E0100"

	// E0101: Integer literal followed by '_'
	ErrorDigitSeparator = "E0101"

	// E0102: Input left over after the top-level expression
	ErrorTrailingInput = "E0102"

	// E0103: Nesting exceeds the configured depth limit
	ErrorTooDeep = "E0103"

	// Tooling errors (reserved range: E0900-E0999)

	// E0900: Source file could not be read
	ErrorReadFile = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Input does not match the grammar"
	case ErrorDigitSeparator:
		return "An integer literal cannot be followed by '_'"
	case ErrorTrailingInput:
		return "Input remains after the top-level expression"
	case ErrorTooDeep:
		return "Expression or pattern is nested too deeply"
	case ErrorReadFile:
		return "Source file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
