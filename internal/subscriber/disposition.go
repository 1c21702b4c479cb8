package subscriber

// Outcome is the handler's verdict on a delivery. The subscription adapter
// performs the actual acknowledgment, so business handlers never touch the
// transport.
type Outcome int

const (
	// OutcomeComplete acknowledges the message; it will not be redelivered.
	OutcomeComplete Outcome = iota
	// OutcomeAbandon requeues the message for another delivery attempt,
	// subject to the max-delivery-count policy.
	OutcomeAbandon
	// OutcomeDeadLetter terminates the message immediately with a reason
	// code and description.
	OutcomeDeadLetter
)

type Disposition struct {
	Outcome     Outcome
	Reason      string
	Description string
}

func Complete() Disposition {
	return Disposition{Outcome: OutcomeComplete}
}

func Abandon(description string) Disposition {
	return Disposition{Outcome: OutcomeAbandon, Description: description}
}

func DeadLetter(reason, description string) Disposition {
	return Disposition{Outcome: OutcomeDeadLetter, Reason: reason, Description: description}
}
