package config

const defaultProfilePrompt = `
You are an intelligent assistant that converts resumes into structured JSON.

Given the following resume:

%s

Extract structured data in this JSON format:

{
  "name": "<Full Name>",
  "skills": ["Skill1", "Skill2"],
  "education": ["Degree in Field from University"],
  "projects": ["Project title or short description"],
  "experience": ["Job title at Company - short description"],
  "certifications": ["Certification Name"]
}

Only return pure JSON. Do not include explanations or any other text.
`

const defaultSummaryPrompt = `
You are a professional recruiter assistant.

Here is a candidate's resume:

%s

Give a short professional summary (3-4 lines) of this candidate, including key skills, experience, and any notable achievements. Avoid repeating lines from the resume. Be concise and helpful for recruiters.

Only provide the summary. Do not include explanations or headers.
`

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "groq",
			Model:       "llama-3.1-8b-instant",
			Temperature: 0.2,
			MaxTokens:   1024,
		},
		Graph: GraphConfig{
			URI:               "bolt://localhost:7687",
			Dialect:           "neo4j",
			SingleTransaction: true,
		},
		Ingest: IngestConfig{
			Fingerprint: "md5",
			MaxFileMB:   10,
		},
		Extraction: ExtractionPrompts{
			Mode:    ModeWordSearchOnly,
			System:  "You are a helpful assistant.",
			Profile: defaultProfilePrompt,
		},
		Summary: SummaryPrompts{
			Enabled: true,
			System:  "You are a helpful recruiter assistant.",
			Resume:  defaultSummaryPrompt,
		},
		Concurrency: ConcurrencyConfig{
			Summaries: 1,
		},
		Server: ServerConfig{
			Port:         "8080",
			AllowOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
