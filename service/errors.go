package service

// Kody błędów walidacji zwracane razem z komunikatem po polsku.
const (
	CodeBelowMinimumPeople     = "below-minimum-people"
	CodeAboveMaximumPeople     = "above-maximum-people"
	CodeInvalidDate            = "invalid-date"
	CodeDateUnavailable        = "date-unavailable"
	CodeEmptyItems             = "empty-items"
	CodeItemsUnavailable       = "items-unavailable"
	CodeInvalidStatus          = "invalid-status"
	CodeMissingRejectionReason = "missing-rejection-reason"
	CodeInvalidStarsRange      = "invalid-stars-range"
	CodeEmptyMessageBody       = "empty-message-body"
	CodeMessageTooLong         = "message-too-long"
)

// ValidationError: dane wejściowe do poprawienia przez klienta (HTTP 400).
type ValidationError struct {
	Code    string
	Message string
	Details []string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError: wskazana encja nie istnieje (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StateConflictError: operacja niedozwolona w bieżącym stanie zamówienia (HTTP 409).
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string { return e.Message }
