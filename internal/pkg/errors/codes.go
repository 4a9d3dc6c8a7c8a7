package errors

// Machine-readable error codes of the batch tools
const (
	CodeMissingInputFile    = "MISSING_INPUT_FILE"
	CodeTransformationError = "TRANSFORMATION_ERROR"
	CodeInvalidCoordinate   = "INVALID_COORDINATE"
	CodeInvalidConfig       = "INVALID_CONFIG"
)
