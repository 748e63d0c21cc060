package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAI is a Client backed by the OpenAI chat completions API.
type OpenAI struct {
	apiKey string
	model  string
	agent  Agent
	client *http.Client
}

// NewOpenAI creates an OpenAI client bound to the given model deployment and
// agent identity.
func NewOpenAI(apiKey, model string, agent Agent, timeout time.Duration) *OpenAI {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		agent:  agent,
		client: &http.Client{Timeout: timeout},
	}
}

// Invoke sends the prompt as a new single-turn conversation and returns the raw
// response text.
func (o *OpenAI) Invoke(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": o.agent.Instructions},
			{"role": "user", "content": prompt},
		},
		"temperature": 0,
		"metadata": map[string]string{
			"agent_name":    o.agent.Name,
			"agent_version": o.agent.Version,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.apiKey))

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model invocation failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", err
	}
	if apiResp.Error.Message != "" {
		return "", fmt.Errorf("model API error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty completion from model")
	}
	return apiResp.Choices[0].Message.Content, nil
}
