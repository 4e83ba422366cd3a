package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// options reads typed values out of Request.Options. Keys are matched
// case-insensitively and a blank value counts as unset.
type options map[string]string

func (o options) lookup(key string) (string, bool) {
	if v, ok := o[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	for k, v := range o {
		if strings.EqualFold(k, key) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

func (o options) text(key, def string) string {
	if v, ok := o.lookup(key); ok {
		return v
	}
	return def
}

func (o options) integer(key string, def int) (int, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badOption(key, v, "an integer")
	}
	return n, nil
}

func (o options) number(key string, def float64) (float64, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badOption(key, v, "a number")
	}
	return f, nil
}

func (o options) flag(key string, def bool) (bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badOption(key, v, "true or false")
	}
	return b, nil
}

func badOption(key, value, want string) error {
	return errors.NewInvalidInput(errors.ErrCodeInvalidArgument,
		fmt.Sprintf("option %s=%q: expected %s", key, value, want)).
		WithContext("option", key)
}
