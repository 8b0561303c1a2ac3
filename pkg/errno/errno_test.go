package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErrKeepsCode(t *testing.T) {
	err := ConvertErr(RecordNotFoundErr)
	assert.Equal(t, int64(RecordNotFoundCode), err.ErrCode)
}

func TestConvertErrUnwrapsWrapped(t *testing.T) {
	wrapped := errors.WithMessage(ParamErr, "bad page")
	err := ConvertErr(wrapped)
	assert.Equal(t, int64(ParamErrCode), err.ErrCode)
}

func TestConvertErrForeignError(t *testing.T) {
	err := ConvertErr(errors.New("boom"))
	assert.Equal(t, int64(ServiceErrCode), err.ErrCode)
	assert.Equal(t, "boom", err.ErrMsg)
}

func TestConvertErrWrappedCauseKeepsDiagnostics(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := ConvertErr(errors.WithMessage(cause, "failed to create comment"))
	assert.Equal(t, int64(ServiceErrCode), err.ErrCode)
	assert.Contains(t, err.ErrMsg, "failed to create comment")
	assert.Contains(t, err.ErrMsg, "driver: bad connection")
}

func TestWithMessageDoesNotMutateSentinel(t *testing.T) {
	custom := ParamErr.WithMessage("custom")
	assert.Equal(t, "custom", custom.ErrMsg)
	assert.Equal(t, "Wrong parameter has been given", ParamErr.ErrMsg)
	assert.Equal(t, int64(ParamErrCode), custom.ErrCode)
}
