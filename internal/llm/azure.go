package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AzureOpenAI is a Client backed by an Azure OpenAI deployment. The endpoint
// and deployment name identify the hosted model; authentication uses the
// api-key header scheme.
type AzureOpenAI struct {
	endpoint   string
	deployment string
	apiKey     string
	agent      Agent
	client     *http.Client
}

const azureAPIVersion = "2024-06-01"

// NewAzureOpenAI creates an Azure OpenAI client for the given deployment.
func NewAzureOpenAI(endpoint, deployment, apiKey string, agent Agent, timeout time.Duration) *AzureOpenAI {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AzureOpenAI{
		endpoint:   strings.TrimRight(endpoint, "/"),
		deployment: deployment,
		apiKey:     apiKey,
		agent:      agent,
		client:     &http.Client{Timeout: timeout},
	}
}

// Invoke sends the prompt as a new single-turn conversation and returns the raw
// response text.
func (a *AzureOpenAI) Invoke(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"messages": []map[string]string{
			{"role": "system", "content": a.agent.Instructions},
			{"role": "user", "content": prompt},
		},
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		a.endpoint, a.deployment, azureAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", a.apiKey)

	resp, err := a.client.Do(req)
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
	}
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", err
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty completion from model")
	}
	return apiResp.Choices[0].Message.Content, nil
}
