package errors

// Code represents an error code
type Code string

// Generic codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Loot generation codes. These are recovered locally by the engines and
// surface as warnings on a generation result rather than as failures.
const (
	CodeSourceUnavailable   Code = "SOURCE_UNAVAILABLE"
	CodeInvalidFormula      Code = "INVALID_FORMULA"
	CodeNoQualifyingItems   Code = "NO_QUALIFYING_ITEMS"
	CodeNoSourcesConfigured Code = "NO_SOURCES_CONFIGURED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether the code describes a condition the loot
// engines degrade around instead of failing the run.
func (c Code) Recoverable() bool {
	switch c {
	case CodeSourceUnavailable, CodeInvalidFormula, CodeNoQualifyingItems, CodeNoSourcesConfigured:
		return true
	default:
		return false
	}
}
