package llm

import "context"

// Client invokes the generative model. Every call is a fresh, stateless
// conversation; no history is carried between invocations.
type Client interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Agent is the named, versioned configuration binding a model deployment and an
// instruction set. The instructions are sent as the system message on every call.
type Agent struct {
	Name         string
	Version      string
	Instructions string
}

// DefaultAgent is the planning agent identity used when the config omits one.
var DefaultAgent = Agent{
	Name:         "WorkOrderPlanningAgent",
	Version:      "1",
	Instructions: "You are a maintenance planning agent. You turn diagnosed equipment faults into structured repair work orders. You respond with a single JSON object and nothing else.",
}
