package bootstrap

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
	"github.com/vkngwrapper/core/v3/common"
)

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()

	c.Assert(cfg.ApplicationName, qt.Equals, "Hello Triangle")
	c.Assert(cfg.EngineVersion, qt.Equals, common.CreateVersion(1, 0, 0))
	c.Assert(cfg.APIVersion, qt.Equals, common.Vulkan1_2)
	c.Assert(cfg.EnableValidation, qt.IsTrue)
	c.Assert(cfg.ValidationLayers, qt.DeepEquals, []string{"VK_LAYER_KHRONOS_validation"})

	// The registry must not be aliased.
	cfg.ValidationLayers[0] = "changed"
	c.Assert(DefaultValidationLayers[0], qt.Equals, "VK_LAYER_KHRONOS_validation")
}

func TestConfigFromEnv(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set(EnvApplicationName, "Device Probe")
		envy.Set(EnvValidation, "false")
		envy.Set(EnvLayers, "VK_LAYER_KHRONOS_validation, VK_LAYER_LUNARG_api_dump,")

		cfg, err := ConfigFromEnv()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.ApplicationName, qt.Equals, "Device Probe")
		c.Assert(cfg.EngineName, qt.Equals, "No Engine")
		c.Assert(cfg.EnableValidation, qt.IsFalse)
		c.Assert(cfg.ValidationLayers, qt.DeepEquals, []string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_LUNARG_api_dump"})
	})
}

func TestConfigFromEnvEmptyLayerList(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set(EnvLayers, "")

		cfg, err := ConfigFromEnv()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.ValidationLayers, qt.HasLen, 0)
	})
}

func TestConfigFromEnvBadBool(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set(EnvValidation, "sometimes")

		_, err := ConfigFromEnv()
		c.Assert(err, qt.ErrorMatches, `config: invalid DEVICESETUP_VALIDATION: .*`)
	})
}
