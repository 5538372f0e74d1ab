package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies request failures.
type ErrorCode int

const (
	// ErrCodeServiceError indicates the transport failed before a response arrived.
	ErrCodeServiceError ErrorCode = iota
	// ErrCodeStatusCode indicates a GET or upload saw a status in [300,600).
	ErrCodeStatusCode
	// ErrCodeNoData indicates a successful status with an empty body.
	ErrCodeNoData
	// ErrCodeNoResponse indicates the transport returned neither a response nor an error.
	ErrCodeNoResponse
	// ErrCodeFailedResponseParsing indicates the response carried no usable status line.
	ErrCodeFailedResponseParsing
	// ErrCodeFailedDataParsing indicates the response body was not valid UTF-8 text.
	ErrCodeFailedDataParsing
	// ErrCodeDeserialization indicates the response body could not be decoded.
	ErrCodeDeserialization
	// ErrCodeWrongStatusCode indicates a POST saw a status outside [200,299].
	ErrCodeWrongStatusCode
	// ErrCodeFileRead indicates an upload source file could not be read.
	ErrCodeFileRead
	// ErrCodeInvalidRequest indicates the request could not be built (e.g. malformed URL).
	ErrCodeInvalidRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeServiceError:
		return "service_error"
	case ErrCodeStatusCode:
		return "status_code"
	case ErrCodeNoData:
		return "no_data"
	case ErrCodeNoResponse:
		return "no_response"
	case ErrCodeFailedResponseParsing:
		return "failed_response_parsing"
	case ErrCodeFailedDataParsing:
		return "failed_data_parsing"
	case ErrCodeDeserialization:
		return "deserialization"
	case ErrCodeWrongStatusCode:
		return "wrong_status_code"
	case ErrCodeFileRead:
		return "file_read"
	case ErrCodeInvalidRequest:
		return "invalid_request"
	default:
		return "unknown"
	}
}

// Error is a classified request failure.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status (0 when no response was seen).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the raw response body, kept for diagnostics. May be nil.
	Body []byte
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewServiceError wraps a transport failure.
func NewServiceError(err error) *Error {
	return &Error{Code: ErrCodeServiceError, Message: err.Error(), Err: err}
}

// NewStatusCodeError reports a GET/upload status in [300,600).
func NewStatusCodeError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeStatusCode,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}

// NewNoDataError reports an empty body on a successful status.
func NewNoDataError() *Error {
	return &Error{Code: ErrCodeNoData, Message: "response contained no data"}
}

// NewNoResponseError reports a missing response object.
func NewNoResponseError() *Error {
	return &Error{Code: ErrCodeNoResponse, Message: "transport returned no response"}
}

// NewFailedResponseParsingError reports a response without a usable status.
func NewFailedResponseParsingError() *Error {
	return &Error{Code: ErrCodeFailedResponseParsing, Message: "response has no HTTP status"}
}

// NewFailedDataParsingError reports a body that is not valid text.
func NewFailedDataParsingError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeFailedDataParsing,
		StatusCode: statusCode,
		Message:    "response body is not valid UTF-8",
		Body:       body,
	}
}

// NewDeserializationError wraps a decode failure.
func NewDeserializationError(err error) *Error {
	return &Error{Code: ErrCodeDeserialization, Message: err.Error(), Err: err}
}

// NewWrongStatusCodeError reports a POST status outside [200,299]. The
// message embeds the status and body text.
func NewWrongStatusCodeError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeWrongStatusCode,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Status code %d returned. Data: %s", statusCode, body),
		Body:       body,
	}
}

// NewFileReadError wraps a failure to read an upload source.
func NewFileReadError(path string, err error) *Error {
	return &Error{
		Code:    ErrCodeFileRead,
		Message: fmt.Sprintf("read %s: %v", path, err),
		Err:     err,
	}
}

// NewInvalidRequestError wraps a failure to build the request.
func NewInvalidRequestError(err error) *Error {
	return &Error{Code: ErrCodeInvalidRequest, Message: err.Error(), Err: err}
}

// CodeOf returns the classification of err, if it is an *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// StatusCodeOf returns the HTTP status carried by err, if any.
func StatusCodeOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.StatusCode > 0 {
		return e.StatusCode, true
	}
	return 0, false
}

func hasCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsServiceError checks if err is a transport failure.
func IsServiceError(err error) bool { return hasCode(err, ErrCodeServiceError) }

// IsStatusCode checks if err is a GET/upload status failure.
func IsStatusCode(err error) bool { return hasCode(err, ErrCodeStatusCode) }

// IsNoData checks if err reports an empty body.
func IsNoData(err error) bool { return hasCode(err, ErrCodeNoData) }

// IsNoResponse checks if err reports a missing response.
func IsNoResponse(err error) bool { return hasCode(err, ErrCodeNoResponse) }

// IsFailedResponseParsing checks if err reports an unusable response.
func IsFailedResponseParsing(err error) bool { return hasCode(err, ErrCodeFailedResponseParsing) }

// IsFailedDataParsing checks if err reports a non-text body.
func IsFailedDataParsing(err error) bool { return hasCode(err, ErrCodeFailedDataParsing) }

// IsDeserialization checks if err is a decode failure.
func IsDeserialization(err error) bool { return hasCode(err, ErrCodeDeserialization) }

// IsWrongStatusCode checks if err is a POST status failure.
func IsWrongStatusCode(err error) bool { return hasCode(err, ErrCodeWrongStatusCode) }

// IsFileRead checks if err is an upload source read failure.
func IsFileRead(err error) bool { return hasCode(err, ErrCodeFileRead) }
