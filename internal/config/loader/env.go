package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment variables the engine reads.
const DefaultEnvPrefix = "U8TEXT_"

// EnvLoader loads configuration from environment variables.
//
// Mapped variables go to their configured path. Any other variable carrying
// the prefix is mapped by convention: U8TEXT_ALLOC_PAGE_SIZE becomes
// alloc.page_size.
type EnvLoader struct {
	prefix  string
	mapping map[string]envBinding
	lookup  func() []string
}

// ValueKind is the type a mapped variable's value is converted to.
type ValueKind uint8

const (
	// KindAuto converts integers and booleans and keeps anything else as a
	// string. Variables mapped by convention use it.
	KindAuto ValueKind = iota

	// KindString keeps the value verbatim.
	KindString

	// KindInt converts the value to int64.
	KindInt

	// KindBool converts true/yes/on/1 and false/no/off/0.
	KindBool
)

type envBinding struct {
	path string
	kind ValueKind
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		lookup:  os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader that reads variables from environ, a
// list of KEY=value pairs, instead of the process environment.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.lookup = func() []string { return environ }
	return l
}

func defaultEnvMapping(prefix string) map[string]envBinding {
	return map[string]envBinding{
		prefix + "DECODE_MODE":     {"decode.mode", KindString},
		prefix + "WIDE_BITS":       {"wide.bits", KindInt},
		prefix + "ALLOC_STRATEGY":  {"alloc.strategy", KindString},
		prefix + "ALLOC_PAGE_SIZE": {"alloc.page_size", KindInt},
		prefix + "LOG_LEVEL":       {"log.level", KindString},
		prefix + "LOG_DEVELOPMENT": {"log.development", KindBool},
	}
}

// AddMapping maps envVar to a dot-separated configuration path. The value
// is converted as KindAuto.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.AddTypedMapping(envVar, configPath, KindAuto)
}

// AddTypedMapping maps envVar to a configuration path and converts its
// value to kind.
func (l *EnvLoader) AddTypedMapping(envVar, configPath string, kind ValueKind) {
	if l.mapping == nil {
		l.mapping = make(map[string]envBinding)
	}
	l.mapping[envVar] = envBinding{path: configPath, kind: kind}
}

// Load returns the prefixed variables as a nested map. Empty values count as
// set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.lookup() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		b, mapped := l.mapping[name]
		if !mapped {
			b = envBinding{path: l.envToPath(name), kind: KindAuto}
		}
		if b.path == "" {
			continue
		}
		setByPath(config, b.path, convertValue(value, b.kind))
	}
	return config, nil
}

// envToPath converts U8TEXT_SECTION_SOME_KEY to section.some_key.
func (l *EnvLoader) envToPath(env string) string {
	section, key, ok := strings.Cut(strings.TrimPrefix(env, l.prefix), "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(key)
}

// convertValue converts s to kind. A value that does not convert stays a
// string so that decoding reports the type mismatch against its path.
func convertValue(s string, kind ValueKind) any {
	switch kind {
	case KindString:
		return s
	case KindInt:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i
		}
		return s
	case KindBool:
		if b, ok := parseBool(s); ok {
			return b
		}
		return s
	default:
		return parseValue(s)
	}
}

// parseValue converts integers and booleans; everything else stays a string.
func parseValue(s string) any {
	if b, ok := parseBool(s); ok && !isDigits(s) {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
