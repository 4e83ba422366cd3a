package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// enumValue is a string flag restricted to a fixed set of choices.
type enumValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, allowed []string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Type() string { return "string" }

func (e *enumValue) Set(val string) error {
	val = strings.ToLower(strings.TrimSpace(val))
	for _, a := range e.allowed {
		if val == a {
			e.value = val
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

func joinChoices(choices []string) string {
	return strings.Join(choices, "|")
}

// AddFlagValidation wraps an existing flag so Set rejects values the
// validator refuses.
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidatePort accepts 0 to 65535; 0 picks a free port.
func ValidatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", port)
	}
	return nil
}

// ValidateRatio accepts numbers in (0, 1].
func ValidateRatio(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %s", s)
	}
	if f <= 0 || f > 1 {
		return fmt.Errorf("must be greater than 0 and at most 1, got %s", s)
	}
	return nil
}

// ValidateNonNegative accepts integers >= 0.
func ValidateNonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer: %s", s)
	}
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

// changedOptions maps flags the user actually set to tool option names, so
// tools fall back to their own defaults for everything else.
func changedOptions(cmd *cobra.Command, flagToOption map[string]string) map[string]string {
	opts := make(map[string]string)
	for flagName, option := range flagToOption {
		f := cmd.Flags().Lookup(flagName)
		if f == nil || !f.Changed {
			continue
		}
		opts[option] = f.Value.String()
	}
	return opts
}

// formatCommandError prints a ToolError without its internal code, adding
// the location when there is one.
func formatCommandError(err error) string {
	var te *errors.ToolError
	if !errors.As(err, &te) {
		return err.Error()
	}

	msg := te.Message
	if te.Line > 0 {
		loc := fmt.Sprintf("line %d", te.Line)
		if te.Column > 0 {
			loc += fmt.Sprintf(", column %d", te.Column)
		}
		msg = loc + ": " + msg
	}
	if te.Cause != nil {
		msg += ": " + te.Cause.Error()
	}
	if available, ok := errors.GetErrorContext(err)["available"].([]string); ok && len(available) > 0 {
		msg += "\navailable: " + strings.Join(available, ", ")
	}
	return msg
}
