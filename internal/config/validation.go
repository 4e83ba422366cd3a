package config

import (
	"fmt"
	"net"
	"path"
	"regexp"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/logging"
)

// ValidationError is a configuration problem with optional suggestions.
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String formats all errors, then all warnings, each with its suggestions.
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("Validation errors:\n")
		writeIssues(&builder, vr.Errors)
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("Validation warnings:\n")
		writeIssues(&builder, vr.Warnings)
	}

	return builder.String()
}

func writeIssues(b *strings.Builder, issues []ValidationError) {
	for _, issue := range issues {
		fmt.Fprintf(b, "  - %s: %s\n", issue.Field, issue.Message)
		for _, suggestion := range issue.Suggestions {
			fmt.Fprintf(b, "      hint: %s\n", suggestion)
		}
	}
}

func (vr *ValidationResult) addError(field string, value interface{}, msg string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, msg string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

// ValidateConfigWithDetails checks every section and collects all errors and
// warnings instead of stopping at the first one.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateServerConfig(&config.Server, result)
	validateCodecConfig(&config.Codec, result)
	validateJSConfig(&config.JS, result)
	validateInputConfig(&config.Input, result)
	validateWatchConfig(&config.Watch, result)
	validateOutputConfig(&config.Output, result)
	validateLogConfig(&config.Log, result)

	result.Valid = !result.HasErrors()

	return result
}

func validateServerConfig(config *ServerConfig, result *ValidationResult) {
	if config.Port < 0 || config.Port > 65535 {
		result.addError("server.port", config.Port,
			fmt.Sprintf("port %d is not in valid range 0-65535", config.Port),
			"Use a port between 1024-65535 for non-privileged access",
			"Port 0 lets the system assign an available port")
	} else if config.Port > 0 && config.Port < 1024 {
		result.addWarning("server.port", config.Port,
			"port below 1024 requires elevated privileges",
			"Use the default port 8080")
	}

	if config.Host != "" {
		if err := validateHostname(config.Host); err != nil {
			result.addError("server.host", config.Host,
				fmt.Sprintf("invalid host: %v", err),
				"Use localhost for local development",
				"Use 0.0.0.0 to listen on all interfaces")
		} else if config.Host == "0.0.0.0" || config.Host == "::" {
			result.addWarning("server.host", config.Host,
				"server is reachable from other machines",
				"Use localhost unless remote access is needed")
		}
	}

	for _, origin := range config.AllowedOrigins {
		if _, err := path.Match(origin, ""); err != nil {
			result.addError("server.allowed_origins", origin,
				fmt.Sprintf("invalid origin pattern %q", origin),
				"Patterns match the Origin host, e.g. localhost:3000 or *.example.com")
			continue
		}
		if origin == "*" {
			result.addWarning("server.allowed_origins", origin,
				"any origin may open a websocket connection")
		}
	}

	if config.Debounce < 0 {
		result.addError("server.debounce", config.Debounce.String(),
			"debounce cannot be negative",
			"Use 0 to process every websocket message immediately")
	}

	if config.ShutdownTimeout < 0 {
		result.addError("server.shutdown_timeout", config.ShutdownTimeout.String(),
			"shutdown timeout cannot be negative")
	}
}

func validateCodecConfig(config *CodecConfig, result *ValidationResult) {
	if config.BinaryThreshold <= 0 || config.BinaryThreshold > 1 {
		result.addError("codec.binary_threshold", config.BinaryThreshold,
			"binary threshold must be greater than 0 and at most 1",
			fmt.Sprintf("The default is %.2f", DefaultBinaryThreshold))
	}
}

func validateJSConfig(config *JSConfig, result *ValidationResult) {
	if !contains(JSEngines, config.Engine) {
		result.addError("js.engine", config.Engine,
			fmt.Sprintf("unknown engine %q", config.Engine),
			"Valid engines: "+strings.Join(JSEngines, ", "))
	}
}

func validateInputConfig(config *InputConfig, result *ValidationResult) {
	if config.MaxBytes < 0 {
		result.addError("input.max_bytes", config.MaxBytes,
			"max bytes cannot be negative")
	}
}

func validateWatchConfig(config *WatchConfig, result *ValidationResult) {
	if config.Debounce < 0 {
		result.addError("watch.debounce", config.Debounce.String(),
			"debounce cannot be negative")
	}
}

func validateOutputConfig(config *OutputConfig, result *ValidationResult) {
	if !contains(OutputFormats, config.Format) {
		result.addError("output.format", config.Format,
			fmt.Sprintf("unknown output format %q", config.Format),
			"Valid formats: "+strings.Join(OutputFormats, ", "))
	}
}

func validateLogConfig(config *LogConfig, result *ValidationResult) {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		result.addError("log.level", config.Level,
			fmt.Sprintf("unknown log level %q", config.Level),
			"Valid levels: "+strings.Join(LogLevels, ", "))
	}
	if !contains(LogFormats, config.Format) {
		result.addError("log.format", config.Format,
			fmt.Sprintf("unknown log format %q", config.Format),
			"Valid formats: "+strings.Join(LogFormats, ", "))
	}
}

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func validateHostname(host string) error {
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if net.ParseIP(host) != nil {
		return nil
	}

	if !hostnamePattern.MatchString(host) {
		return fmt.Errorf("invalid hostname format")
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
