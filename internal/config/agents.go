package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvAgentsAPIKey overrides the model provider API key.
	EnvAgentsAPIKey = "OPENAI_API_KEY"

	// EnvAgentsBaseURL overrides the model provider base URL.
	EnvAgentsBaseURL = "AGENTS_BASE_URL"

	// EnvAgentsChatModel overrides the chat agent model.
	EnvAgentsChatModel = "AGENTS_CHAT_MODEL"

	// EnvAgentsSearchModel overrides the search agent model.
	EnvAgentsSearchModel = "AGENTS_SEARCH_MODEL"

	// EnvAgentsMaxToolRounds overrides the tool-calling round limit.
	EnvAgentsMaxToolRounds = "AGENTS_MAX_TOOL_ROUNDS"

	// EnvAgentsSearchAPIKey overrides the web search backend API key.
	EnvAgentsSearchAPIKey = "BRAVE_API_KEY"
)

// AgentsConfig contains model provider configuration shared by all agent
// instances. An empty API key is accepted at startup; agents report
// execution failures until one is configured.
type AgentsConfig struct {
	APIKey        string `toml:"api_key"`
	BaseURL       string `toml:"base_url"`
	ChatModel     string `toml:"chat_model"`
	SearchModel   string `toml:"search_model"`
	MaxToolRounds int    `toml:"max_tool_rounds"`
	SearchAPIKey  string `toml:"search_api_key"`
}

// Finalize applies defaults, loads environment overrides, and validates the
// agents configuration.
func (c *AgentsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.ChatModel != "" {
		c.ChatModel = overlay.ChatModel
	}
	if overlay.SearchModel != "" {
		c.SearchModel = overlay.SearchModel
	}
	if overlay.MaxToolRounds != 0 {
		c.MaxToolRounds = overlay.MaxToolRounds
	}
	if overlay.SearchAPIKey != "" {
		c.SearchAPIKey = overlay.SearchAPIKey
	}
}

func (c *AgentsConfig) loadDefaults() {
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4o-mini"
	}
	if c.SearchModel == "" {
		c.SearchModel = "gpt-4o-mini"
	}
	if c.MaxToolRounds == 0 {
		c.MaxToolRounds = 3
	}
}

func (c *AgentsConfig) loadEnv() {
	if v := os.Getenv(EnvAgentsAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAgentsBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentsChatModel); v != "" {
		c.ChatModel = v
	}
	if v := os.Getenv(EnvAgentsSearchModel); v != "" {
		c.SearchModel = v
	}
	if v := os.Getenv(EnvAgentsMaxToolRounds); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxToolRounds = n
		}
	}
	if v := os.Getenv(EnvAgentsSearchAPIKey); v != "" {
		c.SearchAPIKey = v
	}
}

func (c *AgentsConfig) validate() error {
	if c.MaxToolRounds < 1 {
		return fmt.Errorf("max_tool_rounds must be positive")
	}
	return nil
}
