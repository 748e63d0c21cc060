package model

import "time"

// DiagnosedFault is the input to the planning pipeline. It is produced by the
// upstream diagnosis stage and consumed read-only here.
type DiagnosedFault struct {
	ID          string             `json:"id"`
	MachineID   string             `json:"machineId"`
	MachineName string             `json:"machineName"`
	FaultType   string             `json:"faultType"`
	Severity    string             `json:"severity"`
	Description string             `json:"description"`
	DiagnosedAt time.Time          `json:"diagnosedAt"`
	Telemetry   map[string]float64 `json:"telemetry,omitempty"`
}
