package model

import "time"

// Part represents a spare part's inventory record. PartNumber is the key used
// for lookups; ID is the storage identifier.
type Part struct {
	ID                 string    `gorm:"primaryKey;size:64" json:"id"`
	PartNumber         string    `gorm:"uniqueIndex;size:64;not null" json:"partNumber"`
	Name               string    `gorm:"size:256;not null" json:"name"`
	Description        string    `json:"description"`
	Category           string    `gorm:"size:128" json:"category"`
	QuantityInStock    int       `json:"quantityInStock"`
	ReorderLevel       int       `json:"reorderLevel"`
	UnitCost           float64   `json:"unitCost"`
	LeadTimeDays       int       `json:"leadTimeDays"`
	CompatibleMachines []string  `gorm:"serializer:json" json:"compatibleMachines"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}
