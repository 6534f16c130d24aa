package errors

type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL_ERROR"
	CodeUsage    Code = "USAGE_ERROR"

	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Input lists
	CodeFileOpen        Code = "FILE_OPEN_ERROR"
	CodeFileRead        Code = "FILE_READ_ERROR"
	CodeIdentifierParse Code = "IDENTIFIER_PARSE_ERROR"

	// Report output
	CodeOutputCreate Code = "OUTPUT_CREATE_ERROR"
	CodeOutputWrite  Code = "OUTPUT_WRITE_ERROR"
)

func (c Code) String() string {
	return string(c)
}
