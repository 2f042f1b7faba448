package infoplist

import (
	"fmt"

	"github.com/bleperm/bleperm/internal/capability"
)

// Descriptions overrides the default usage-description text. Empty fields
// fall back to the built-in defaults.
type Descriptions struct {
	Always     string
	Peripheral string
}

func (d Descriptions) text(key string) string {
	switch key {
	case capability.KeyBluetoothAlwaysUsage:
		if d.Always != "" {
			return d.Always
		}
	case capability.KeyBluetoothPeripheralUsage:
		if d.Peripheral != "" {
			return d.Peripheral
		}
	}
	text, _ := capability.DefaultDescription(key)
	return text
}

// Inject adds the Bluetooth usage descriptions and background modes to t
// using the built-in description text, and returns t.
func Inject(t *Tree) *Tree {
	return InjectWith(t, Descriptions{})
}

// InjectWith is Inject with caller-supplied description defaults.
//
// A usage description is written only when the key is absent or holds an
// empty string; a value the developer set is kept. UIBackgroundModes is
// created empty if absent, then bluetooth-central and bluetooth-peripheral
// are appended when not already listed. Nothing else in t is touched.
//
// UIBackgroundModes must be an array when present; any other type panics.
func InjectWith(t *Tree, d Descriptions) *Tree {
	for _, key := range capability.UsageDescriptionKeys {
		if needsDescription(t, key) {
			t.Set(key, d.text(key))
		}
	}

	modes := backgroundModes(t)
	for _, mode := range capability.BackgroundModes {
		if !containsString(modes, mode) {
			modes = append(modes, mode)
		}
	}
	t.Set(capability.KeyBackgroundModes, modes)

	return t
}

// Validate reports an error when t holds a value Inject cannot work with:
// UIBackgroundModes present but not an array.
func Validate(t *Tree) error {
	v, ok := t.Get(capability.KeyBackgroundModes)
	if !ok {
		return nil
	}
	if _, isArray := v.([]any); !isArray {
		return fmt.Errorf("%s must be an array, got %s", capability.KeyBackgroundModes, describe(v))
	}
	return nil
}

func describe(v any) string {
	switch val := v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case Raw:
		return val.Tag()
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Missing lists what Inject would add to t, without changing it.
func Missing(t *Tree) []string {
	var missing []string
	for _, key := range capability.UsageDescriptionKeys {
		if needsDescription(t, key) {
			missing = append(missing, key)
		}
	}

	var modes []any
	if v, ok := t.Get(capability.KeyBackgroundModes); ok {
		modes, _ = v.([]any)
	}
	for _, mode := range capability.BackgroundModes {
		if !containsString(modes, mode) {
			missing = append(missing, capability.KeyBackgroundModes+" "+mode)
		}
	}
	return missing
}

// needsDescription reports whether key is absent or an empty string.
// Values of other types count as developer-supplied.
func needsDescription(t *Tree, key string) bool {
	v, ok := t.Get(key)
	if !ok {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}

func backgroundModes(t *Tree) []any {
	v, ok := t.Get(capability.KeyBackgroundModes)
	if !ok {
		return []any{}
	}
	modes, ok := v.([]any)
	if !ok {
		panic(fmt.Sprintf("infoplist: %s is %T, want array", capability.KeyBackgroundModes, v))
	}
	return modes
}

// containsString reports whether a string element equals s exactly.
// Non-string elements never match.
func containsString(items []any, s string) bool {
	for _, item := range items {
		if v, ok := item.(string); ok && v == s {
			return true
		}
	}
	return false
}
