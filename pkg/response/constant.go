package response

const (
	// MessageSuccess is the message attached to every OK response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal causes from the caller.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// ServiceUnavailableCode is the error_code for upstream provider failures.
	ServiceUnavailableCode = 503

	// DateTimeFormat is the layout for human-readable timestamps in payloads.
	DateTimeFormat = "2006-01-02 15:04:05"
)
