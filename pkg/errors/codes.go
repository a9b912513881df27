package errors

// ErrorCode is a string identifier for a specific failure condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeInvalidInput       ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeValidation         ErrorCode = "COMMON_004"
	ErrCodeSerialization      ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeCacheError         ErrorCode = "COMMON_007"
	ErrCodeStoreError         ErrorCode = "COMMON_008"

	// CodeOK is the sentinel returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
	// CodeUnknown is returned by GetCode when no AppError is in the chain.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Clinical scale error codes.  These are the only failures the detection core
// surfaces to callers: they indicate a client contract violation at the
// scale-submission boundary, not missing data.
const (
	ErrCodeScaleNotFound        ErrorCode = "SCALE_001"
	ErrCodeScaleItemUnknown     ErrorCode = "SCALE_002"
	ErrCodeScaleScoreOutOfRange ErrorCode = "SCALE_003"
	ErrCodeScaleItemMissing     ErrorCode = "SCALE_004"
)
