package normalize

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"maintenance-planner-backend/internal/mapping"
	"maintenance-planner-backend/internal/model"
)

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n?|```")

// StripFences removes markdown code fences such as ```json ... ``` that the
// model sometimes emits despite instructions, and trims whitespace. Best-effort
// textual cleanup, not a markdown parser.
func StripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// flexInt accepts integers encoded either as JSON numbers or as numeric
// strings. The model occasionally quotes numbers.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %s: %w", string(data), err)
	}
	*n = flexInt(int(f))
	return nil
}

// rawWorkOrder mirrors the model's output schema with pointer fields so that
// absent and null can be told apart from zero values.
type rawWorkOrder struct {
	WorkOrderNumber   *string        `json:"workOrderNumber"`
	MachineID         *string        `json:"machineId"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Type              *string        `json:"type"`
	Priority          *string        `json:"priority"`
	Status            *string        `json:"status"`
	AssignedTo        *string        `json:"assignedTo"`
	EstimatedDuration flexInt        `json:"estimatedDuration"`
	Tasks             []rawTask      `json:"tasks"`
	PartsUsed         []rawPartUsage `json:"partsUsed"`
	Notes             string         `json:"notes"`
}

type rawTask struct {
	Sequence                 flexInt  `json:"sequence"`
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	EstimatedDurationMinutes flexInt  `json:"estimatedDurationMinutes"`
	RequiredSkills           []string `json:"requiredSkills"`
	SafetyNotes              string   `json:"safetyNotes"`
}

type rawPartUsage struct {
	PartID     string  `json:"partId"`
	PartNumber string  `json:"partNumber"`
	Quantity   flexInt `json:"quantity"`
}

// ParseWorkOrder turns raw model output into a fully populated work order,
// filling deterministic defaults from the originating fault for any field the
// model omitted. It never returns a partially built order.
func ParseWorkOrder(raw string, fault model.DiagnosedFault) (*model.WorkOrder, error) {
	cleaned := StripFences(raw)
	if cleaned == "" || cleaned == "null" {
		return nil, ErrEmptyResponse
	}
	if !strings.HasPrefix(cleaned, "{") {
		return nil, &ResponseParseError{Raw: raw, Err: fmt.Errorf("response is not a JSON object")}
	}

	var parsed rawWorkOrder
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &ResponseParseError{Raw: raw, Err: err}
	}

	wo := &model.WorkOrder{
		Title:             parsed.Title,
		Description:       parsed.Description,
		AssignedTo:        parsed.AssignedTo,
		EstimatedDuration: int(parsed.EstimatedDuration),
		Notes:             parsed.Notes,
	}

	if parsed.MachineID != nil && *parsed.MachineID != "" {
		wo.MachineID = *parsed.MachineID
	} else {
		wo.MachineID = fault.MachineID
	}

	if parsed.Status != nil && *parsed.Status != "" {
		wo.Status = *parsed.Status
	} else {
		wo.Status = model.StatusPending
	}

	if parsed.Priority != nil && *parsed.Priority != "" {
		wo.Priority = *parsed.Priority
	} else {
		wo.Priority = mapping.SeverityToPriority(fault.Severity)
	}

	if parsed.Type != nil && *parsed.Type != "" {
		wo.Type = *parsed.Type
	} else {
		wo.Type = model.TypeCorrective
	}

	wo.Tasks = make([]model.RepairTask, 0, len(parsed.Tasks))
	for _, task := range parsed.Tasks {
		wo.Tasks = append(wo.Tasks, model.RepairTask{
			Sequence:                 int(task.Sequence),
			Title:                    task.Title,
			Description:              task.Description,
			EstimatedDurationMinutes: int(task.EstimatedDurationMinutes),
			RequiredSkills:           task.RequiredSkills,
			SafetyNotes:              task.SafetyNotes,
		})
	}

	wo.PartsUsed = make([]model.WorkOrderPartUsage, 0, len(parsed.PartsUsed))
	for _, usage := range parsed.PartsUsed {
		wo.PartsUsed = append(wo.PartsUsed, model.WorkOrderPartUsage{
			PartID:     usage.PartID,
			PartNumber: usage.PartNumber,
			Quantity:   int(usage.Quantity),
		})
	}

	if parsed.WorkOrderNumber != nil && *parsed.WorkOrderNumber != "" {
		wo.WorkOrderNumber = *parsed.WorkOrderNumber
	} else {
		wo.WorkOrderNumber = GenerateWorkOrderNumber(time.Now())
	}

	return wo, nil
}

// GenerateWorkOrderNumber produces a human-readable work order identifier of
// the form WO-<UTC date>-<4 digit suffix>.
func GenerateWorkOrderNumber(now time.Time) string {
	return fmt.Sprintf("WO-%s-%04d", now.UTC().Format("20060102"), 1000+rand.IntN(9000))
}
