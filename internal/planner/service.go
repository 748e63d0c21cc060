package planner

import (
	"context"
	"fmt"
	"log"
	"sync"

	"maintenance-planner-backend/internal/llm"
	"maintenance-planner-backend/internal/mapping"
	"maintenance-planner-backend/internal/model"
	"maintenance-planner-backend/internal/normalize"
	"maintenance-planner-backend/internal/prompt"
	"maintenance-planner-backend/internal/store"
)

// Service runs the work order synthesis pipeline: requirement mapping,
// concurrent resource lookup, prompt construction, model invocation, response
// normalization and persistence.
type Service struct {
	store store.Store
	llm   llm.Client
}

// NewService creates a planner service.
func NewService(s store.Store, client llm.Client) *Service {
	return &Service{store: s, llm: client}
}

// PlanRepair synthesizes and persists a work order for the diagnosed fault.
// Any stage failure aborts the run; nothing is persisted until normalization
// has fully succeeded.
func (s *Service) PlanRepair(ctx context.Context, fault model.DiagnosedFault) (*model.WorkOrder, error) {
	skills := mapping.RequiredSkills(fault.FaultType)
	partNumbers := mapping.RequiredParts(fault.FaultType)
	if !mapping.Known(fault.FaultType) {
		log.Printf("Fault type %q has no requirement entry; using default requirements", fault.FaultType)
	}

	technicians, parts, err := s.fetchResources(ctx, skills, partNumbers)
	if err != nil {
		return nil, err
	}
	log.Printf("Planning fault %s on machine %s with %d candidate technicians and %d parts",
		fault.ID, fault.MachineID, len(technicians), len(parts))

	promptText, err := prompt.BuildWorkOrderPrompt(fault, technicians, parts)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt for fault %s: %w", fault.ID, err)
	}

	raw, err := s.llm.Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("model invocation failed for fault %s: %w", fault.ID, err)
	}

	wo, err := normalize.ParseWorkOrder(raw, fault)
	if err != nil {
		return nil, err
	}

	id, err := s.store.SaveWorkOrder(ctx, wo)
	if err != nil {
		return nil, err
	}
	log.Printf("Stored work order %s (%s) for machine %s", wo.WorkOrderNumber, id, wo.MachineID)
	return wo, nil
}

// fetchResources issues the technician and part queries concurrently and joins
// them. The first failure cancels the sibling query and aborts the run.
func (s *Service) fetchResources(ctx context.Context, skills, partNumbers []string) ([]model.Technician, []model.Part, error) {
	qctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg          sync.WaitGroup
		technicians []model.Technician
		parts       []model.Part
		techErr     error
		partErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		technicians, techErr = s.store.FetchAvailableTechnicians(qctx, skills)
		if techErr != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		parts, partErr = s.store.FetchPartsByNumbers(qctx, partNumbers)
		if partErr != nil {
			cancel()
		}
	}()
	wg.Wait()

	if techErr != nil {
		return nil, nil, fmt.Errorf("technician lookup failed: %w", techErr)
	}
	if partErr != nil {
		return nil, nil, fmt.Errorf("part lookup failed: %w", partErr)
	}
	return technicians, parts, nil
}
