package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeScaleNotFound, "unknown scale")
	assert.Equal(t, `[SCALE_001] unknown scale`, err.Error())

	withDetail := err.WithDetail(`scale="phq15"`)
	assert.Equal(t, `[SCALE_001] unknown scale: scale="phq15"`, withDetail.Error())
	// Original is not mutated.
	assert.Empty(t, err.Detail)
}

func TestWithDetail_NilReceiver(t *testing.T) {
	var err *AppError
	assert.Nil(t, err.WithDetail("x"))
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrCodeStoreError, "failed to read administration record")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCodeStoreError, GetCode(err))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	inner := New(ErrCodeScaleItemUnknown, "no such item")
	wrapped := Wrap(inner, CodeUnknown, "validation failed")
	assert.Equal(t, ErrCodeScaleItemUnknown, wrapped.Code)
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeScaleScoreOutOfRange, "score 5 not in [0,3]")
	outer := Wrap(inner, ErrCodeValidation, "submission rejected")

	assert.True(t, IsCode(outer, ErrCodeScaleScoreOutOfRange))
	assert.True(t, IsCode(outer, ErrCodeValidation))
	assert.False(t, IsCode(outer, ErrCodeNotFound))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(New(ErrCodeScaleItemUnknown, "x")))
	assert.True(t, IsValidation(New(ErrCodeScaleScoreOutOfRange, "x")))
	assert.True(t, IsValidation(New(ErrCodeScaleNotFound, "x")))
	assert.False(t, IsValidation(New(ErrCodeInternal, "x")))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsValidation(fmt.Errorf("plain")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeCacheError, GetCode(New(ErrCodeCacheError, "boom")))
}
