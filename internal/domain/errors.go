package domain

import "errors"

// Validation errors: recoverable locally by correcting the caller's input.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidDateRange = errors.New("end date must be later than start date")
	ErrInvalidDate      = errors.New("invalid date format, expected yyyy-mm-dd")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidFloor     = errors.New("floor number outside the building's floor range")
	ErrInvalidStatus    = errors.New("invalid assignment status")
)

// Not-found errors: the target id does not resolve; no state was changed.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBuildingNotFound   = errors.New("building not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)

// Conflict errors: the operation collides with existing state.
var (
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrRoomOccupied        = errors.New("room is occupied or has an active assignment")
	ErrBuildingHasHistory  = errors.New("building has assignment history and cannot be deleted")
	ErrDuplicateReceipt    = errors.New("receipt number already exists")
	ErrDuplicateRoomNumber = errors.New("room number already exists in this building")
	ErrStatusFinal         = errors.New("assignment status is final and cannot change")
)

var ErrPermissionDenied = errors.New("operation not permitted for this role")

var (
	validationErrs = []error{ErrMissingField, ErrInvalidDateRange, ErrInvalidDate, ErrInvalidAmount, ErrInvalidFloor, ErrInvalidStatus}
	notFoundErrs   = []error{ErrUserNotFound, ErrBuildingNotFound, ErrRoomNotFound, ErrAssignmentNotFound, ErrPaymentNotFound}
	conflictErrs   = []error{ErrRoomUnavailable, ErrRoomOccupied, ErrBuildingHasHistory, ErrDuplicateReceipt, ErrDuplicateRoomNumber, ErrStatusFinal}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func IsValidation(err error) bool { return isAny(err, validationErrs) }
func IsNotFound(err error) bool   { return isAny(err, notFoundErrs) }
func IsConflict(err error) bool   { return isAny(err, conflictErrs) }
func IsPermission(err error) bool { return errors.Is(err, ErrPermissionDenied) }
