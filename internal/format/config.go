package format

// ObservabilityConfig controls logging behavior of the handler pipeline.
// The engine handles translated customer content, so raw payloads are
// loggable only when redaction is explicitly disabled.
type ObservabilityConfig struct {
	LogLevel      string `json:"log_level"`
	RedactContent bool   `json:"redact_content"`
}
