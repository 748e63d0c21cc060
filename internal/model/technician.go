package model

import "time"

// Technician represents a maintenance technician's reference record.
type Technician struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Name            string    `gorm:"size:256;not null" json:"name"`
	Department      string    `gorm:"size:128" json:"department"`
	Skills          []string  `gorm:"serializer:json" json:"skills"`
	Certifications  []string  `gorm:"serializer:json" json:"certifications"`
	Shift           string    `gorm:"size:32" json:"shift"`
	Available       bool      `gorm:"index" json:"available"`
	CurrentWorkload int       `json:"currentWorkload"`
	MaxWorkload     int       `json:"maxWorkload"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// HasAnySkill reports whether the technician has at least one of the given skills.
func (t Technician) HasAnySkill(skills []string) bool {
	for _, want := range skills {
		for _, have := range t.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}
