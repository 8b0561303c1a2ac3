package errno

import "errors"

// ErrNo is the uniform business error. ErrCode doubles as the HTTP status
// the response envelope carries.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string { return e.ErrMsg }

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

const (
	SuccessCode             = 200
	CreatedCode             = 201
	ParamErrCode            = 400
	AuthorizationFailedCode = 403
	RecordNotFoundCode      = 404
	ServiceErrCode          = 500
)

var (
	Success                = NewErrNo(SuccessCode, "Success")
	Created                = NewErrNo(CreatedCode, "Created successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	RequestErr             = NewErrNo(ParamErrCode, "Invalid request")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization has failed")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundCode, "Record not found")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service internal error")
)

// ConvertErr converts a plain error to ErrNo. A wrapped ErrNo keeps its code;
// anything else is treated as an internal failure.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
