package httperr

import "errors"

// BusinessError é o sinal tipado entre usecase e handler: o código
// decide o status HTTP, a mensagem vai no corpo.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code + ": " + e.Message
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
