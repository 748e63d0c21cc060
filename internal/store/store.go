package store

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maintenance-planner-backend/internal/model"
)

// Store defines the interface for all database operations the planner and the
// API depend on.
type Store interface {
	FetchAvailableTechnicians(ctx context.Context, skills []string) ([]model.Technician, error)
	FetchPartsByNumbers(ctx context.Context, numbers []string) ([]model.Part, error)
	SaveWorkOrder(ctx context.Context, wo *model.WorkOrder) (string, error)
	ListWorkOrders(ctx context.Context) ([]model.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (*model.WorkOrder, error)
	ListTechnicians(ctx context.Context) ([]model.Technician, error)
	ListParts(ctx context.Context) ([]model.Part, error)
	UpsertTechnicians(ctx context.Context, technicians []model.Technician) error
	UpsertParts(ctx context.Context, parts []model.Part) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// FetchAvailableTechnicians returns available technicians holding at least one
// of the given skills (OR semantics). An empty skill set short-circuits to an
// empty result without touching the database.
func (s *gormStore) FetchAvailableTechnicians(ctx context.Context, skills []string) ([]model.Technician, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	var available []model.Technician
	if err := s.db.WithContext(ctx).Where("available = ?", true).Find(&available).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch available technicians: %w", err)
	}

	// Skills are stored as a JSON column, so the overlap check happens here
	// rather than in SQL.
	matched := make([]model.Technician, 0, len(available))
	for _, tech := range available {
		if tech.HasAnySkill(skills) {
			matched = append(matched, tech)
		}
	}
	return matched, nil
}

// FetchPartsByNumbers returns the subset of the given part numbers present in
// inventory. Missing numbers are dropped from the result; the gap is logged but
// is not an error. An empty input short-circuits without querying.
func (s *gormStore) FetchPartsByNumbers(ctx context.Context, numbers []string) ([]model.Part, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	var parts []model.Part
	if err := s.db.WithContext(ctx).Where("part_number IN ?", numbers).Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch parts: %w", err)
	}

	if len(parts) < len(numbers) {
		found := make(map[string]struct{}, len(parts))
		for _, p := range parts {
			found[p.PartNumber] = struct{}{}
		}
		for _, number := range numbers {
			if _, ok := found[number]; !ok {
				log.Printf("Part number %s not found in inventory", number)
			}
		}
	}
	return parts, nil
}

// SaveWorkOrder assigns a storage identifier and persists the work order with
// its tasks and part usages. Returns the storage id.
func (s *gormStore) SaveWorkOrder(ctx context.Context, wo *model.WorkOrder) (string, error) {
	if wo.ID == "" {
		wo.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(wo).Error; err != nil {
		return "", fmt.Errorf("failed to save work order %s: %w", wo.WorkOrderNumber, err)
	}
	return wo.ID, nil
}

func (s *gormStore) ListWorkOrders(ctx context.Context) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := s.db.WithContext(ctx).
		Preload("Tasks").
		Preload("PartsUsed").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	return orders, nil
}

func (s *gormStore) GetWorkOrder(ctx context.Context, id string) (*model.WorkOrder, error) {
	var order model.WorkOrder
	err := s.db.WithContext(ctx).
		Preload("Tasks").
		Preload("PartsUsed").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormStore) ListTechnicians(ctx context.Context) ([]model.Technician, error) {
	var technicians []model.Technician
	if err := s.db.WithContext(ctx).Find(&technicians).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	return technicians, nil
}

func (s *gormStore) ListParts(ctx context.Context) ([]model.Part, error) {
	var parts []model.Part
	if err := s.db.WithContext(ctx).Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return parts, nil
}

// UpsertTechnicians inserts or refreshes technician reference records.
func (s *gormStore) UpsertTechnicians(ctx context.Context, technicians []model.Technician) error {
	if len(technicians) == 0 {
		return nil
	}
	log.Printf("Upserting %d technicians...", len(technicians))
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "department", "skills", "certifications", "shift",
			"available", "current_workload", "max_workload", "updated_at",
		}),
	}).Create(&technicians).Error
}

// UpsertParts inserts or refreshes part inventory records.
func (s *gormStore) UpsertParts(ctx context.Context, parts []model.Part) error {
	if len(parts) == 0 {
		return nil
	}
	log.Printf("Upserting %d parts...", len(parts))
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "part_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "quantity_in_stock",
			"reorder_level", "unit_cost", "lead_time_days",
			"compatible_machines", "updated_at",
		}),
	}).Create(&parts).Error
}
