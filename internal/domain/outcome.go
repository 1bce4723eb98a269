package domain

// OutcomeStatus is the binary result of a mutation action.
type OutcomeStatus string

// Action outcome statuses.
const (
	OutcomeSuccess OutcomeStatus = "SUCCESS"
	OutcomeError   OutcomeStatus = "ERROR"
)

// ActionOutcome is the uniform result every mutation action returns:
// a status plus a human-readable message. Failed actions never escape
// as errors; they are folded into an ERROR outcome so the caller always
// has something to display.
type ActionOutcome struct {
	Status  OutcomeStatus
	Message string
}

// Succeeded reports whether the action completed.
func (o ActionOutcome) Succeeded() bool {
	return o.Status == OutcomeSuccess
}

// SuccessOutcome builds a SUCCESS outcome with the given message.
func SuccessOutcome(msg string) ActionOutcome {
	return ActionOutcome{Status: OutcomeSuccess, Message: msg}
}

// ErrorOutcome builds an ERROR outcome from a failure, surfacing the
// backend's message when one exists.
func ErrorOutcome(err error) ActionOutcome {
	return ActionOutcome{Status: OutcomeError, Message: UserMessage(err)}
}
