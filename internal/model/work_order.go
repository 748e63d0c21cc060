package model

import "time"

// Work order type, priority and status enumerations. The string values are part
// of the JSON contract with the generative model and must not change.
const (
	TypeCorrective = "corrective"
	TypePreventive = "preventive"
	TypeEmergency  = "emergency"

	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"

	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// WorkOrder is the synthesized repair work order. The json tags define the
// schema the model is instructed to emit.
type WorkOrder struct {
	ID                string               `gorm:"primaryKey;size:64" json:"id"`
	WorkOrderNumber   string               `gorm:"uniqueIndex;size:32;not null" json:"workOrderNumber"`
	MachineID         string               `gorm:"index;size:64;not null" json:"machineId"`
	Title             string               `gorm:"size:256" json:"title"`
	Description       string               `json:"description"`
	Type              string               `gorm:"size:32;not null" json:"type"`
	Priority          string               `gorm:"size:32;not null" json:"priority"`
	Status            string               `gorm:"size:32;not null" json:"status"`
	AssignedTo        *string              `gorm:"size:64" json:"assignedTo"`
	EstimatedDuration int                  `json:"estimatedDuration"`
	Tasks             []RepairTask         `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE" json:"tasks"`
	PartsUsed         []WorkOrderPartUsage `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE" json:"partsUsed"`
	Notes             string               `json:"notes,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

// RepairTask is a single step of a work order. Sequence starts at 1 and defines
// execution order.
type RepairTask struct {
	ID                       int64    `gorm:"autoIncrement;primaryKey" json:"-"`
	WorkOrderID              string   `gorm:"index;size:64" json:"-"`
	Sequence                 int      `json:"sequence"`
	Title                    string   `gorm:"size:256" json:"title"`
	Description              string   `json:"description"`
	EstimatedDurationMinutes int      `json:"estimatedDurationMinutes"`
	RequiredSkills           []string `gorm:"serializer:json" json:"requiredSkills"`
	SafetyNotes              string   `json:"safetyNotes,omitempty"`
}

// WorkOrderPartUsage is a part line item on a work order.
type WorkOrderPartUsage struct {
	ID          int64  `gorm:"autoIncrement;primaryKey" json:"-"`
	WorkOrderID string `gorm:"index;size:64" json:"-"`
	PartID      string `gorm:"size:64" json:"partId"`
	PartNumber  string `gorm:"size:64" json:"partNumber"`
	Quantity    int    `json:"quantity"`
}
