package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"maintenance-planner-backend/internal/model"
	"maintenance-planner-backend/internal/normalize"
)

// fakeStore is a scriptable Store implementation for planner tests.
type fakeStore struct {
	technicians []model.Technician
	parts       []model.Part
	techErr     error
	partErr     error
	saveErr     error

	fetchedSkills  []string
	fetchedNumbers []string
	saved          *model.WorkOrder
}

func (f *fakeStore) FetchAvailableTechnicians(ctx context.Context, skills []string) ([]model.Technician, error) {
	f.fetchedSkills = skills
	return f.technicians, f.techErr
}

func (f *fakeStore) FetchPartsByNumbers(ctx context.Context, numbers []string) ([]model.Part, error) {
	f.fetchedNumbers = numbers
	return f.parts, f.partErr
}

func (f *fakeStore) SaveWorkOrder(ctx context.Context, wo *model.WorkOrder) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	wo.ID = "stored-1"
	f.saved = wo
	return wo.ID, nil
}

func (f *fakeStore) ListWorkOrders(ctx context.Context) ([]model.WorkOrder, error) {
	return nil, nil
}

func (f *fakeStore) GetWorkOrder(ctx context.Context, id string) (*model.WorkOrder, error) {
	return nil, nil
}

func (f *fakeStore) ListTechnicians(ctx context.Context) ([]model.Technician, error) {
	return nil, nil
}

func (f *fakeStore) ListParts(ctx context.Context) ([]model.Part, error) {
	return nil, nil
}

func (f *fakeStore) UpsertTechnicians(ctx context.Context, t []model.Technician) error {
	return nil
}

func (f *fakeStore) UpsertParts(ctx context.Context, p []model.Part) error {
	return nil
}

func (f *fakeStore) DB() *gorm.DB {
	return nil
}

// fakeClient returns a canned model response or error.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) Invoke(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func testFault() model.DiagnosedFault {
	return model.DiagnosedFault{
		ID:        "fault-1",
		MachineID: "TCP-001",
		FaultType: "curing_temperature_excessive",
		Severity:  "high",
	}
}

func TestPlanRepair_HappyPath(t *testing.T) {
	st := &fakeStore{
		technicians: []model.Technician{{ID: "tech-1", Name: "Ada", Skills: []string{"thermal_systems"}, Available: true}},
		parts:       []model.Part{{ID: "part-1", PartNumber: "TS-4402", Name: "Temperature sensor"}},
	}
	client := &fakeClient{response: "```json\n" + `{
		"title": "Replace curing temperature sensor",
		"type": "corrective",
		"priority": "high",
		"status": "pending",
		"assignedTo": "tech-1",
		"estimatedDuration": "60",
		"tasks": [{"sequence": 1, "title": "Swap sensor", "estimatedDurationMinutes": 60, "requiredSkills": ["thermal_systems"]}],
		"partsUsed": [{"partId": "part-1", "partNumber": "TS-4402", "quantity": 1}]
	}` + "\n```"}

	wo, err := NewService(st, client).PlanRepair(context.Background(), testFault())
	require.NoError(t, err)

	assert.Equal(t, "stored-1", wo.ID)
	assert.Equal(t, "TCP-001", wo.MachineID)
	assert.Equal(t, 60, wo.EstimatedDuration)
	require.Len(t, wo.Tasks, 1)
	require.NotNil(t, st.saved)

	// The mapper's requirements must drive both gateway queries.
	assert.Equal(t, []string{"thermal_systems", "plc_programming"}, st.fetchedSkills)
	assert.Equal(t, []string{"TS-4402", "HTR-220"}, st.fetchedNumbers)

	// The fetched resources must appear in the prompt.
	assert.True(t, strings.Contains(client.prompt, "tech-1"))
	assert.True(t, strings.Contains(client.prompt, "TS-4402"))
}

func TestPlanRepair_GatewayFailureAbortsRun(t *testing.T) {
	boom := errors.New("connection refused")

	for _, tc := range []struct {
		name  string
		setup func(*fakeStore)
	}{
		{"technician query fails", func(f *fakeStore) { f.techErr = boom }},
		{"part query fails", func(f *fakeStore) { f.partErr = boom }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := &fakeStore{}
			tc.setup(st)
			client := &fakeClient{response: `{"title":"x"}`}

			wo, err := NewService(st, client).PlanRepair(context.Background(), testFault())

			assert.Nil(t, wo)
			require.ErrorIs(t, err, boom)
			assert.Empty(t, client.prompt, "the model must not be invoked after a gateway failure")
			assert.Nil(t, st.saved, "nothing may be persisted after a gateway failure")
		})
	}
}

func TestPlanRepair_ModelFailurePropagates(t *testing.T) {
	st := &fakeStore{}
	client := &fakeClient{err: errors.New("deployment unavailable")}

	wo, err := NewService(st, client).PlanRepair(context.Background(), testFault())

	assert.Nil(t, wo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model invocation failed")
	assert.Nil(t, st.saved)
}

func TestPlanRepair_ParseFailureIsTypedAndNothingPersisted(t *testing.T) {
	st := &fakeStore{}
	client := &fakeClient{response: "sorry, no JSON today"}

	wo, err := NewService(st, client).PlanRepair(context.Background(), testFault())

	assert.Nil(t, wo)
	var parseErr *normalize.ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "sorry, no JSON today", parseErr.Raw)
	assert.Nil(t, st.saved)
}

func TestPlanRepair_PersistenceFailureSurfacesAfterNormalization(t *testing.T) {
	st := &fakeStore{saveErr: errors.New("disk full")}
	client := &fakeClient{response: `{"title":"Fix it"}`}

	wo, err := NewService(st, client).PlanRepair(context.Background(), testFault())

	assert.Nil(t, wo)
	require.ErrorContains(t, err, "disk full")
}

func TestPlanRepair_UnknownFaultTypeStillPlans(t *testing.T) {
	st := &fakeStore{}
	client := &fakeClient{response: `{"title":"General checkup"}`}

	fault := testFault()
	fault.FaultType = "never_seen_before"
	fault.Severity = "low"

	wo, err := NewService(st, client).PlanRepair(context.Background(), fault)
	require.NoError(t, err)

	assert.Equal(t, []string{"general_maintenance"}, st.fetchedSkills)
	assert.Empty(t, st.fetchedNumbers)
	assert.Equal(t, model.PriorityLow, wo.Priority)
}
