package constants

import "errors"

// Коды ошибок соответствуют этапам пайплайна.
const (
	CodeNetwork = iota + 2
	CodeCoercion
	CodeEmptyRange
	CodeFilesystem
)

type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

// CodeOf разворачивает цепочку ошибок до первой CodedError.
func CodeOf(err error) int {
	for err != nil {
		if ce, ok := err.(*CodedError); ok {
			return ce.Code()
		}
		err = errors.Unwrap(err)
	}
	return 0
}

var ErrEmptyTransactions = NewCodedError(CodeEmptyRange, "transaction table is empty, date range is undefined")
