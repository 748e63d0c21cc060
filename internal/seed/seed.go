package seed

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"maintenance-planner-backend/internal/model"
	"maintenance-planner-backend/internal/store"
)

// File is the on-disk layout of a reference-data seed file.
type File struct {
	Technicians []Technician `yaml:"technicians"`
	Parts       []Part       `yaml:"parts"`
}

// Technician mirrors model.Technician with YAML field names.
type Technician struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Department      string   `yaml:"department"`
	Skills          []string `yaml:"skills"`
	Certifications  []string `yaml:"certifications"`
	Shift           string   `yaml:"shift"`
	Available       bool     `yaml:"available"`
	CurrentWorkload int      `yaml:"current_workload"`
	MaxWorkload     int      `yaml:"max_workload"`
}

// Part mirrors model.Part with YAML field names.
type Part struct {
	ID                 string   `yaml:"id"`
	PartNumber         string   `yaml:"part_number"`
	Name               string   `yaml:"name"`
	Description        string   `yaml:"description"`
	Category           string   `yaml:"category"`
	QuantityInStock    int      `yaml:"quantity_in_stock"`
	ReorderLevel       int      `yaml:"reorder_level"`
	UnitCost           float64  `yaml:"unit_cost"`
	LeadTimeDays       int      `yaml:"lead_time_days"`
	CompatibleMachines []string `yaml:"compatible_machines"`
}

// Parse reads and decodes a seed file.
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seedFile File
	if err := yaml.NewDecoder(f).Decode(&seedFile); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return &seedFile, nil
}

// Apply upserts the seed file's reference data into the store.
func Apply(ctx context.Context, path string, s store.Store) error {
	seedFile, err := Parse(path)
	if err != nil {
		return err
	}

	technicians := make([]model.Technician, 0, len(seedFile.Technicians))
	for _, t := range seedFile.Technicians {
		technicians = append(technicians, model.Technician{
			ID:              t.ID,
			Name:            t.Name,
			Department:      t.Department,
			Skills:          t.Skills,
			Certifications:  t.Certifications,
			Shift:           t.Shift,
			Available:       t.Available,
			CurrentWorkload: t.CurrentWorkload,
			MaxWorkload:     t.MaxWorkload,
		})
	}
	if err := s.UpsertTechnicians(ctx, technicians); err != nil {
		return fmt.Errorf("failed to seed technicians: %w", err)
	}

	parts := make([]model.Part, 0, len(seedFile.Parts))
	for _, p := range seedFile.Parts {
		parts = append(parts, model.Part{
			ID:                 p.ID,
			PartNumber:         p.PartNumber,
			Name:               p.Name,
			Description:        p.Description,
			Category:           p.Category,
			QuantityInStock:    p.QuantityInStock,
			ReorderLevel:       p.ReorderLevel,
			UnitCost:           p.UnitCost,
			LeadTimeDays:       p.LeadTimeDays,
			CompatibleMachines: p.CompatibleMachines,
		})
	}
	if err := s.UpsertParts(ctx, parts); err != nil {
		return fmt.Errorf("failed to seed parts: %w", err)
	}

	log.Printf("Seeded %d technicians and %d parts from %s", len(technicians), len(parts), path)
	return nil
}
