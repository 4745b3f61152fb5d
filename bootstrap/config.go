package bootstrap

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/vkngwrapper/core/v3/common"
)

const (
	EnvApplicationName = "DEVICESETUP_APP_NAME"
	EnvEngineName      = "DEVICESETUP_ENGINE_NAME"
	EnvValidation      = "DEVICESETUP_VALIDATION"
	EnvLayers          = "DEVICESETUP_LAYERS"
)

// Config is the startup configuration handed to the instance and
// logical device factories.
type Config struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	// EnableValidation attaches ValidationLayers to the instance and the device.
	EnableValidation bool
	ValidationLayers []string

	// InstanceExtensions are enabled in addition to the ones the window requires.
	InstanceExtensions []string
}

func DefaultConfig() Config {
	return Config{
		ApplicationName:    "Hello Triangle",
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
		EnableValidation:   true,
		ValidationLayers:   append([]string(nil), DefaultValidationLayers...),
		InstanceExtensions: append([]string(nil), DefaultInstanceExtensions...),
	}
}

// ConfigFromEnv returns DefaultConfig overlaid with any DEVICESETUP_*
// variables set in the environment or in a .env file.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.ApplicationName = envy.Get(EnvApplicationName, cfg.ApplicationName)
	cfg.EngineName = envy.Get(EnvEngineName, cfg.EngineName)

	if raw := envy.Get(EnvValidation, ""); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: invalid %s", EnvValidation)
		}
		cfg.EnableValidation = enabled
	}

	if raw, set := lookupEnv(EnvLayers); set {
		cfg.ValidationLayers = splitList(raw)
	}

	return cfg, nil
}

// lookupEnv distinguishes an empty value from an unset one; an empty
// layer list is a meaningful request.
func lookupEnv(key string) (string, bool) {
	value, err := envy.MustGet(key)
	if err != nil {
		return "", false
	}
	return value, true
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
