package domain

// Phase is the status projection shared by both controllers. It is always a
// function of the most recent request's outcome.
type Phase string

const (
	PhaseIdle       Phase = "IDLE"
	PhaseSubmitting Phase = "SUBMITTING"
	PhaseSucceeded  Phase = "SUCCEEDED"
	PhaseFailed     Phase = "FAILED"
)

type Projection struct {
	Phase  Phase
	Detail string
}
