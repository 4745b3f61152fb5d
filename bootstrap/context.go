package bootstrap

import (
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

// Context holds everything the pipeline acquired. Destroy releases it
// in reverse order of acquisition.
type Context struct {
	Instance      *Instance
	Surface       *Surface
	Candidate     *Candidate
	LogicalDevice *LogicalDevice

	releases releaseStack
}

// Bootstrap runs validation negotiation, instance creation, surface
// creation, device selection and logical device creation in that order.
// On failure everything acquired so far is released before returning.
func Bootstrap(loader Loader, window Window, cfg Config, log logrus.FieldLogger) (*Context, error) {
	log = log.WithField("session", uuid.New().String())
	ctx := &Context{}

	err := ctx.run(loader, window, cfg, log)
	if err != nil {
		ctx.releases.unwind()
		return nil, err
	}

	return ctx, nil
}

func (c *Context) run(loader Loader, window Window, cfg Config, log logrus.FieldLogger) error {
	err := stage(log, "negotiateValidation", func() error {
		if cfg.EnableValidation && !IsLayerSetSupported(loader, cfg.ValidationLayers, log) {
			return markf(nil, ErrValidationLayersUnavailable, "negotiateValidation: %v", cfg.ValidationLayers)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = stage(log, "createInstance", func() error {
		instance, err := CreateInstance(loader, window, cfg, log)
		if err != nil {
			return err
		}
		c.Instance = instance
		c.releases.push(instance.Destroy)
		return nil
	})
	if err != nil {
		return err
	}

	err = stage(log, "createSurface", func() error {
		surface, err := CreateSurface(c.Instance, window)
		if err != nil {
			return err
		}
		c.Surface = surface
		c.releases.push(surface.Destroy)
		return nil
	})
	if err != nil {
		return err
	}

	err = stage(log, "pickPhysicalDevice", func() error {
		candidate, err := PickPhysicalDevice(c.Instance, c.Surface)
		if err != nil {
			return err
		}
		c.Candidate = candidate
		return nil
	})
	if err != nil {
		return err
	}

	return stage(log, "createLogicalDevice", func() error {
		device, err := CreateLogicalDevice(c.Instance, c.Candidate, c.Candidate.Indices, cfg)
		if err != nil {
			return err
		}
		c.LogicalDevice = device
		c.releases.push(device.Destroy)
		return nil
	})
}

func stage(log logrus.FieldLogger, name string, fn func() error) error {
	start := hrtime.Now()
	err := fn()
	log.WithFields(logrus.Fields{
		"stage":   name,
		"elapsed": hrtime.Since(start),
	}).Debug("stage finished")
	return err
}

// Destroy is safe to call more than once.
func (c *Context) Destroy() {
	if c == nil {
		return
	}
	c.releases.unwind()
}
