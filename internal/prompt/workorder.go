package prompt

import (
	"encoding/json"
	"fmt"

	"maintenance-planner-backend/internal/model"
)

// BuildWorkOrderPrompt serializes the fault, the candidate technicians and the
// available parts into the instruction text sent to the model. The instruction
// contract here is the primary defense against malformed output; the normalizer
// is the secondary one.
func BuildWorkOrderPrompt(fault model.DiagnosedFault, technicians []model.Technician, parts []model.Part) (string, error) {
	if technicians == nil {
		technicians = []model.Technician{}
	}
	if parts == nil {
		parts = []model.Part{}
	}

	faultJSON, err := json.MarshalIndent(fault, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal fault: %w", err)
	}
	techJSON, err := json.MarshalIndent(technicians, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal technicians: %w", err)
	}
	partsJSON, err := json.MarshalIndent(parts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal parts: %w", err)
	}

	return fmt.Sprintf(`You are a maintenance planning specialist. Create a repair work order for the diagnosed equipment fault below.

Diagnosed Fault:
%s

Available Technicians:
%s

Available Spare Parts:
%s

Produce a single work order that resolves the fault. Respond with a JSON object using exactly this structure:
{
  "workOrderNumber": "WO-YYYYMMDD-NNNN",
  "machineId": "the machine identifier from the fault",
  "title": "short summary of the repair",
  "description": "what is wrong and how it will be fixed",
  "type": "corrective|preventive|emergency",
  "priority": "critical|high|medium|low",
  "status": "pending",
  "assignedTo": "technician id from the list above, or null",
  "estimatedDuration": 120,
  "tasks": [
    {
      "sequence": 1,
      "title": "task summary",
      "description": "detailed instructions",
      "estimatedDurationMinutes": 30,
      "requiredSkills": ["skill tags"],
      "safetyNotes": "optional safety notes"
    }
  ],
  "partsUsed": [
    {
      "partId": "part id from the list above",
      "partNumber": "part number from the list above",
      "quantity": 1
    }
  ],
  "notes": "optional free text"
}

Hard constraints:
- All duration values must be integers (minutes). Never use strings or unit suffixes.
- Only assign technicians from the supplied list. Leave assignedTo null if none fit.
- Only reference parts from the supplied list in partsUsed. Never invent parts.
- Tasks must be numbered contiguously starting at sequence 1, in logical execution order.
- Output ONLY the JSON object. No prose, no markdown, no code fences.`,
		string(faultJSON), string(techJSON), string(partsJSON)), nil
}
