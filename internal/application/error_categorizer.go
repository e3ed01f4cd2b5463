package application

// ErrorCategory represents the nature of a failed exchange for logging
type ErrorCategory string

const (
	CategoryTransport  ErrorCategory = "TRANSPORT"
	CategoryHTTPStatus ErrorCategory = "HTTP_STATUS"
	CategoryMalformed  ErrorCategory = "MALFORMED"
	CategoryProcessor  ErrorCategory = "PROCESSOR"
)

// CategorizeError maps an exchange failure onto the four failure kinds a
// controller can observe. Anything unrecognised is treated as transport.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := IsProcessorError(err); ok {
		return CategoryProcessor
	}

	if _, ok := IsStatusError(err); ok {
		return CategoryHTTPStatus
	}

	if _, ok := IsMalformedResponseError(err); ok {
		return CategoryMalformed
	}

	return CategoryTransport
}

// LogAttrs returns slog key/value pairs describing err.
func LogAttrs(err error) []any {
	attrs := []any{"error", err, "category", CategorizeError(err)}
	if statusErr, ok := IsStatusError(err); ok {
		attrs = append(attrs, "status_code", statusErr.StatusCode)
	}
	if processorErr, ok := IsProcessorError(err); ok {
		attrs = append(attrs, "processor_code", processorErr.Code)
		if processorErr.DeclineCode != "" {
			attrs = append(attrs, "decline_code", processorErr.DeclineCode)
		}
	}
	return attrs
}
