package internal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"maintenance-planner-backend/internal/llm"
	"maintenance-planner-backend/internal/model"
	"maintenance-planner-backend/internal/planner"
	"maintenance-planner-backend/internal/store"
)

// TestPlanningLifecycle runs the whole pipeline against an in-memory database
// and a stubbed model deployment: requirement mapping, concurrent resource
// lookup, prompt construction, HTTP model invocation, normalization and
// persistence.
func TestPlanningLifecycle(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open("file:planning_lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, testDB.AutoMigrate(
		&model.Technician{},
		&model.Part{},
		&model.WorkOrder{},
		&model.RepairTask{},
		&model.WorkOrderPartUsage{},
	))

	appStore := store.NewGormStore(testDB)
	ctx := context.Background()

	require.NoError(t, appStore.UpsertTechnicians(ctx, []model.Technician{
		{ID: "tech-1", Name: "Ada Lindqvist", Skills: []string{"thermal_systems"}, Available: true},
		{ID: "tech-2", Name: "Brice Okafor", Skills: []string{"thermal_systems"}, Available: false},
	}))
	require.NoError(t, appStore.UpsertParts(ctx, []model.Part{
		{ID: "part-1", PartNumber: "TS-4402", Name: "Temperature sensor", QuantityInStock: 8},
	}))

	// Stub model deployment speaking the Azure OpenAI chat completions wire
	// format. It echoes back a fenced work order referencing the seeded
	// technician and part, and records the prompt it was given.
	var receivedPrompt string
	modelServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.Messages, 2, "every invocation is a fresh two-message conversation")
		assert.Equal(t, "system", req.Messages[0].Role)
		receivedPrompt = req.Messages[1].Content

		completion := map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"role": "assistant",
					"content": "```json\n" + `{
						"title": "Replace curing temperature sensor",
						"description": "Sensor drift caused the curing temperature alarm.",
						"type": "corrective",
						"priority": "high",
						"status": "pending",
						"assignedTo": "tech-1",
						"estimatedDuration": "75",
						"tasks": [
							{"sequence": 1, "title": "Lock out machine", "estimatedDurationMinutes": 15, "requiredSkills": ["general_maintenance"]},
							{"sequence": "2", "title": "Replace sensor", "estimatedDurationMinutes": "60", "requiredSkills": ["thermal_systems"]}
						],
						"partsUsed": [{"partId": "part-1", "partNumber": "TS-4402", "quantity": 1}]
					}` + "\n```",
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completion)
	}))
	defer modelServer.Close()

	client := llm.NewAzureOpenAI(modelServer.URL, "gpt-4-1", "test-key", llm.DefaultAgent, 0)
	svc := planner.NewService(appStore, client)

	fault := model.DiagnosedFault{
		ID:        "fault-1",
		MachineID: "TCP-001",
		FaultType: "curing_temperature_excessive",
		Severity:  "high",
	}

	wo, err := svc.PlanRepair(ctx, fault)
	require.NoError(t, err)

	// The prompt must have carried the fault and only the available technician.
	assert.Contains(t, receivedPrompt, "TCP-001")
	assert.Contains(t, receivedPrompt, "tech-1")
	assert.NotContains(t, receivedPrompt, "tech-2", "unavailable technicians must not reach the prompt")
	assert.Contains(t, receivedPrompt, "TS-4402")
	assert.Contains(t, receivedPrompt, "All duration values must be integers (minutes)")

	// The normalized order must be fully populated and persisted.
	require.NotEmpty(t, wo.ID)
	assert.Equal(t, "TCP-001", wo.MachineID)
	assert.Equal(t, 75, wo.EstimatedDuration)
	require.NotNil(t, wo.AssignedTo)
	assert.Equal(t, "tech-1", *wo.AssignedTo)

	stored, err := appStore.GetWorkOrder(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	require.Len(t, stored.Tasks, 2)
	assert.Equal(t, 2, stored.Tasks[1].Sequence)
	assert.Equal(t, 60, stored.Tasks[1].EstimatedDurationMinutes)
	require.Len(t, stored.PartsUsed, 1)
	assert.Equal(t, "TS-4402", stored.PartsUsed[0].PartNumber)
	assert.False(t, stored.CreatedAt.IsZero())
}
