package bootstrap

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Instance owns one runtime instance handle.
type Instance struct {
	handle    InstanceHandle
	log       logrus.FieldLogger
	destroyed bool
}

// CreateInstance enables the window's required extensions plus the
// configured ones, and attaches the validation layers when validation
// is enabled. Callers are expected to have negotiated the layers first.
func CreateInstance(loader Loader, window Window, cfg Config, log logrus.FieldLogger) (*Instance, error) {
	log.WithField("enabled", cfg.EnableValidation).Info("validation layers")

	available, err := loader.AvailableExtensions()
	if err != nil {
		return nil, markf(err, ErrInstanceCreationFailed, "createInstance: cannot enumerate extensions")
	}

	log.Infof("%d available extensions:", len(available))
	for _, ext := range available {
		log.Info("\t" + ext)
	}

	info := InstanceCreateInfo{
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: cfg.ApplicationVersion,
		EngineName:         cfg.EngineName,
		EngineVersion:      cfg.EngineVersion,
		APIVersion:         cfg.APIVersion,
	}

	for _, ext := range window.RequiredInstanceExtensions() {
		if !slices.Contains(available, ext) {
			return nil, markf(nil, ErrInstanceCreationFailed, "createInstance: missing window extension %s", ext)
		}
		info.EnabledExtensionNames = appendUnique(info.EnabledExtensionNames, ext)
	}

	for _, ext := range cfg.InstanceExtensions {
		info.EnabledExtensionNames = appendUnique(info.EnabledExtensionNames, ext)
	}

	if cfg.EnableValidation {
		info.EnabledLayerNames = append(info.EnabledLayerNames, cfg.ValidationLayers...)
		info.EnableDebugMessenger = len(info.EnabledLayerNames) > 0
	}

	handle, err := loader.CreateInstance(info)
	if err != nil {
		return nil, markf(err, ErrInstanceCreationFailed, "createInstance")
	}

	log.WithField("application", cfg.ApplicationName).Info("instance created")

	return &Instance{
		handle: handle,
		log:    log,
	}, nil
}

func (i *Instance) Handle() InstanceHandle {
	return i.handle
}

func (i *Instance) Destroy() {
	if i == nil || i.destroyed {
		return
	}
	i.destroyed = true
	i.handle.DestroyInstance()
	i.log.Debug("instance destroyed")
}

func appendUnique(list []string, item string) []string {
	if slices.Contains(list, item) {
		return list
	}
	return append(list, item)
}
