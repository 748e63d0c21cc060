package mapping

import (
	"strings"

	"maintenance-planner-backend/internal/model"
)

// SeverityToPriority maps a fault severity onto a work order priority.
// Case-insensitive; unrecognized severities default to medium.
func SeverityToPriority(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		return model.PriorityCritical
	case "high":
		return model.PriorityHigh
	case "medium":
		return model.PriorityMedium
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}
