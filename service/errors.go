package service

// ServiceError represents a handler failure with an HTTP status code.
type ServiceError struct {
	text   string
	status int
}

// NewServiceError creates a new ServiceError instance with the given error message and status code.
func NewServiceError(errorMsg string, httpStatusCode int) ServiceError {
	return ServiceError{
		text:   errorMsg,
		status: httpStatusCode,
	}
}

// Error returns the message body associated with the ServiceError instance.
func (e ServiceError) Error() string {
	return e.text
}

// StatusCode returns the status code associated with the ServiceError instance.
func (e ServiceError) StatusCode() int {
	return e.status
}
