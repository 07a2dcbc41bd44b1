package app

import (
	"fmt"
	"strconv"

	"github.com/vk/microvm/internal/args"
)

// Config is the typed view of a validated invocation.
type Config struct {
	APISockPath    string
	InstanceID     string
	SeccompLevel   int
	StartTimeUs    *int64
	StartTimeCPUUs *int64
	NoAPI          bool
	ConfigFilePath string
	ExtraArgs      []string
}

// NewConfig converts resolved argument values into a Config. Arguments the
// validator guarantees to be present (api-sock, id, seccomp-level) are
// asserted here: their absence after a successful validation pass is a bug
// in the scanner, not user input, so it panics instead of returning an
// error. Numeric conversion of the optional start-time arguments happens at
// this layer and reports a usage error on garbage.
func NewConfig(values *args.Values) (*Config, error) {
	cfg := &Config{
		APISockPath: mustGet(values, "api-sock"),
		InstanceID:  mustGet(values, "id"),
		NoAPI:       values.Has("no-api"),
		ExtraArgs:   values.Extra(),
	}
	cfg.ConfigFilePath = values.Get("config-file")

	rawLevel := mustGet(values, "seccomp-level")
	level, err := strconv.Atoi(rawLevel)
	if err != nil {
		panic(fmt.Sprintf("seccomp-level %q survived validation but is not numeric", rawLevel))
	}
	cfg.SeccompLevel = level

	if cfg.StartTimeUs, err = optionalMicros(values, "start-time-us"); err != nil {
		return nil, err
	}
	if cfg.StartTimeCPUUs, err = optionalMicros(values, "start-time-cpu-us"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mustGet enforces the consumer contract: a value the validator promises
// must be present in the mapping.
func mustGet(values *args.Values, name string) string {
	v, ok := values.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("argument %q missing from resolved values after validation", name))
	}
	return v
}

func optionalMicros(values *args.Values, name string) (*int64, error) {
	raw, ok := values.Lookup(name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("'%s' isn't a valid value for '%s'; expected a non-negative integer", raw, name)
	}
	return &n, nil
}
