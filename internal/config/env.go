package config

import "os"

// ApplyEnv overrides file values with environment variables when they are set.
func ApplyEnv(cfg *Config) {
	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.LLM.Model, "LLM_MODEL")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	if cfg.LLM.APIKey == "" && cfg.LLM.Provider == "groq" {
		setString(&cfg.LLM.APIKey, "GROQ_API_KEY")
	}

	setString(&cfg.Graph.URI, "NEO4J_URI")
	setString(&cfg.Graph.User, "NEO4J_USER")
	setString(&cfg.Graph.Password, "NEO4J_PASSWORD")
	setString(&cfg.Graph.Database, "NEO4J_DATABASE")

	setString(&cfg.Extraction.Mode, "RESUMEGRAPH_MODE")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
}

// Path returns the config file location, honouring CONFIG_PATH.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/config.toml"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
