package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredSkills_KnownFaultTypes(t *testing.T) {
	testCases := []struct {
		name      string
		faultType string
		expected  []string
	}{
		{
			name:      "known fault type",
			faultType: "curing_temperature_excessive",
			expected:  []string{"thermal_systems", "plc_programming"},
		},
		{
			name:      "lookup is case-insensitive",
			faultType: "Curing_Temperature_EXCESSIVE",
			expected:  []string{"thermal_systems", "plc_programming"},
		},
		{
			name:      "surrounding whitespace is ignored",
			faultType: "  vibration_abnormal ",
			expected:  []string{"mechanical_repair", "vibration_analysis"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RequiredSkills(tc.faultType))
		})
	}
}

func TestRequiredSkills_UnknownFaultTypeFallsBack(t *testing.T) {
	for _, faultType := range []string{"", "totally_new_fault", "curing"} {
		assert.Equal(t, []string{"general_maintenance"}, RequiredSkills(faultType),
			"fault type %q should use the default skill set", faultType)
		assert.Empty(t, RequiredParts(faultType),
			"fault type %q should require no parts", faultType)
		assert.False(t, Known(faultType))
	}
}

func TestRequiredParts_KnownFaultType(t *testing.T) {
	assert.Equal(t, []string{"TS-4402", "HTR-220"}, RequiredParts("curing_temperature_excessive"))
	assert.True(t, Known("curing_temperature_excessive"))
}

func TestRequiredSkills_ReturnsCopy(t *testing.T) {
	first := RequiredSkills("pressure_drop")
	first[0] = "mutated"
	assert.Equal(t, []string{"hydraulics", "mechanical_repair"}, RequiredSkills("pressure_drop"))
}

func TestSeverityToPriority(t *testing.T) {
	testCases := []struct {
		severity string
		expected string
	}{
		{"critical", "critical"},
		{"high", "high"},
		{"medium", "medium"},
		{"low", "low"},
		{"CRITICAL", "critical"},
		{"High", "high"},
		{" low ", "low"},
		{"", "medium"},
		{"catastrophic", "medium"},
		{"unknown", "medium"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SeverityToPriority(tc.severity),
			"severity %q", tc.severity)
	}
}
