package response

// AppError 统一错误包装
type AppError struct {
	HTTPStatus int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(httpStatus int, message string, err error) *AppError {
	return &AppError{
		HTTPStatus: httpStatus,
		Message:    message,
		Err:        err,
	}
}
