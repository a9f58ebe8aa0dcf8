package httperr

import "errors"

// Well-known business error codes of the scheduling engine.
const (
	CodeMissingField   = "missing_field"
	CodeInvalidService = "invalid_service"
	CodeInvalidEmail   = "invalid_email"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidPayment = "invalid_payment"
	CodeNotFound       = "not_found"
	CodeTimeConflict   = "time_conflict"
	CodeSlotOutOfGrid  = "slot_out_of_grid"
	CodeInvalidState   = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a business error, or "" for other errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
