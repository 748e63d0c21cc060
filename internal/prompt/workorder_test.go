package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-planner-backend/internal/model"
)

func TestBuildWorkOrderPrompt_EmbedsFaultAndInstructions(t *testing.T) {
	fault := model.DiagnosedFault{
		ID:        "fault-42",
		MachineID: "TCP-001",
		FaultType: "curing_temperature_excessive",
		Severity:  "high",
	}

	text, err := BuildWorkOrderPrompt(fault, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "TCP-001")
	assert.Contains(t, text, "curing_temperature_excessive")
	assert.Contains(t, text, "All duration values must be integers (minutes)")
	assert.Contains(t, text, "Never invent parts")
	assert.Contains(t, text, "Output ONLY the JSON object")
	// Empty inputs must serialize as empty arrays, not null.
	assert.NotContains(t, text, "Available Technicians:\nnull")
	assert.NotContains(t, text, "Available Spare Parts:\nnull")
}

func TestBuildWorkOrderPrompt_SerializesResources(t *testing.T) {
	fault := model.DiagnosedFault{MachineID: "MX-200", FaultType: "vibration_abnormal", Severity: "medium"}
	technicians := []model.Technician{
		{ID: "tech-7", Name: "Dana Reyes", Skills: []string{"vibration_analysis"}, Available: true},
	}
	parts := []model.Part{
		{ID: "part-1", PartNumber: "BRG-6204", Name: "Spindle bearing", QuantityInStock: 12},
	}

	text, err := BuildWorkOrderPrompt(fault, technicians, parts)
	require.NoError(t, err)

	assert.Contains(t, text, "tech-7")
	assert.Contains(t, text, "Dana Reyes")
	assert.Contains(t, text, "BRG-6204")
	assert.Contains(t, text, "Spindle bearing")
}
