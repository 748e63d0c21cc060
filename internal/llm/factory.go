package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"maintenance-planner-backend/config"
)

// NewClient builds the configured model client. The API key may be given
// inline or via the named environment variable.
func NewClient(cfg config.LLMConfig) (Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" && cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured for LLM provider %q", cfg.Provider)
	}

	agent := Agent{
		Name:         cfg.Agent.Name,
		Version:      cfg.Agent.Version,
		Instructions: cfg.Agent.Instructions,
	}
	if agent.Name == "" {
		agent = DefaultAgent
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch strings.ToLower(cfg.Provider) {
	case "openai", "":
		model := cfg.Model
		if model == "" {
			model = "gpt-4.1"
		}
		return NewOpenAI(apiKey, model, agent, timeout), nil

	case "azure":
		if cfg.Endpoint == "" || cfg.Deployment == "" {
			return nil, fmt.Errorf("azure provider requires endpoint and deployment")
		}
		return NewAzureOpenAI(cfg.Endpoint, cfg.Deployment, apiKey, agent, timeout), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openai, azure)", cfg.Provider)
	}
}
