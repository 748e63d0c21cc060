package mapping

import "strings"

// requirement lists the skills and part numbers a fault type calls for.
type requirement struct {
	skills []string
	parts  []string
}

// requirementTable maps normalized (lower-cased) fault types to their
// requirements. Built once; lookups never fail — unknown fault types fall back
// to defaultRequirement.
var requirementTable = map[string]requirement{
	"curing_temperature_excessive": {
		skills: []string{"thermal_systems", "plc_programming"},
		parts:  []string{"TS-4402", "HTR-220"},
	},
	"mixing_temperature_excessive": {
		skills: []string{"thermal_systems", "mechanical_repair"},
		parts:  []string{"TS-4402", "CL-1180"},
	},
	"vibration_abnormal": {
		skills: []string{"mechanical_repair", "vibration_analysis"},
		parts:  []string{"BRG-6204", "MNT-310"},
	},
	"pressure_drop": {
		skills: []string{"hydraulics", "mechanical_repair"},
		parts:  []string{"SEAL-88", "PMP-1500"},
	},
	"conveyor_belt_slippage": {
		skills: []string{"mechanical_repair"},
		parts:  []string{"BELT-2250", "TEN-45"},
	},
	"electrical_fault": {
		skills: []string{"electrical_systems", "plc_programming"},
		parts:  []string{"FUS-32A", "CNT-9013"},
	},
}

var defaultRequirement = requirement{
	skills: []string{"general_maintenance"},
	parts:  nil,
}

func lookup(faultType string) requirement {
	if req, ok := requirementTable[strings.ToLower(strings.TrimSpace(faultType))]; ok {
		return req
	}
	return defaultRequirement
}

// RequiredSkills returns the skill tags needed to repair the given fault type.
// Unknown fault types yield the general maintenance default.
func RequiredSkills(faultType string) []string {
	return append([]string(nil), lookup(faultType).skills...)
}

// RequiredParts returns the part numbers typically consumed repairing the given
// fault type. Unknown fault types yield an empty set.
func RequiredParts(faultType string) []string {
	return append([]string(nil), lookup(faultType).parts...)
}

// Known reports whether the fault type has a dedicated requirement entry.
func Known(faultType string) bool {
	_, ok := requirementTable[strings.ToLower(strings.TrimSpace(faultType))]
	return ok
}
