package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
)

// Aliases kept for call-site brevity.
const (
	CodeInternal = ErrCodeInternal
	CodeNotFound = ErrCodeNotFound
	CodeUnknown  = ErrorCode("UNKNOWN")
	CodeOK       = ErrorCode("OK")
)

// Calendar Module Error Codes
const (
	ErrCodeTribunalUnknown           ErrorCode = "CAL_001"
	ErrCodeHolidaySourceUnavailable  ErrorCode = "CAL_002"
	ErrCodeComputusYearOutOfRange    ErrorCode = "CAL_003"
	ErrCodeCalendarCacheUnavailable  ErrorCode = "CAL_004"
	ErrCodeHolidayRegistryParseError ErrorCode = "CAL_005"
)

// Deadline Module Error Codes
const (
	ErrCodeInvalidDate         ErrorCode = "DDL_001"
	ErrCodeInvalidDeadlineSpan ErrorCode = "DDL_002"
	ErrCodeLegalContextUnknown ErrorCode = "DDL_003"
	ErrCodeDeadlineCalcFailed  ErrorCode = "DDL_004"
)

// Rule / Matrix Module Error Codes
const (
	ErrCodeRuleAreaUnknown ErrorCode = "RUL_001"
	ErrCodeRuleTableEmpty  ErrorCode = "RUL_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.  The engine itself
// has no network surface; the surrounding SaaS shell uses this map when it
// translates engine errors into API responses.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,

	ErrCodeTribunalUnknown:           http.StatusBadRequest,
	ErrCodeHolidaySourceUnavailable:  http.StatusServiceUnavailable,
	ErrCodeComputusYearOutOfRange:    http.StatusBadRequest,
	ErrCodeCalendarCacheUnavailable:  http.StatusInternalServerError,
	ErrCodeHolidayRegistryParseError: http.StatusBadGateway,

	ErrCodeInvalidDate:         http.StatusBadRequest,
	ErrCodeInvalidDeadlineSpan: http.StatusBadRequest,
	ErrCodeLegalContextUnknown: http.StatusBadRequest,
	ErrCodeDeadlineCalcFailed:  http.StatusInternalServerError,

	ErrCodeRuleAreaUnknown: http.StatusBadRequest,
	ErrCodeRuleTableEmpty:  http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",

	ErrCodeTribunalUnknown:           "tribunal has no configured calendar",
	ErrCodeHolidaySourceUnavailable:  "tribunal holiday source unavailable",
	ErrCodeComputusYearOutOfRange:    "year outside supported computus range",
	ErrCodeCalendarCacheUnavailable:  "calendar cache unavailable",
	ErrCodeHolidayRegistryParseError: "failed to parse holiday registry response",

	ErrCodeInvalidDate:         "invalid or unparseable date",
	ErrCodeInvalidDeadlineSpan: "deadline length must be positive",
	ErrCodeLegalContextUnknown: "unknown legal action type",
	ErrCodeDeadlineCalcFailed:  "deadline calculation failed",

	ErrCodeRuleAreaUnknown: "unknown procedural area",
	ErrCodeRuleTableEmpty:  "rule table has no entries",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
