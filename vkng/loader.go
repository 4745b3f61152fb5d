package vkng

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/vkngwrapper/devicesetup/bootstrap"
)

// Loader implements bootstrap.Loader on top of a vkngwrapper global driver.
type Loader struct {
	driver core1_0.GlobalDriver
	log    logrus.FieldLogger
}

// NewLoader builds a loader from vkGetInstanceProcAddr, usually
// sdl.VulkanGetVkGetInstanceProcAddr().
func NewLoader(procAddr unsafe.Pointer, log logrus.FieldLogger) (*Loader, error) {
	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "vkng: cannot load vulkan")
	}

	return &Loader{driver: driver, log: log}, nil
}

func (l *Loader) AvailableLayers() ([]string, error) {
	layers, _, err := l.driver.AvailableLayers()
	if err != nil {
		return nil, err
	}

	names := maps.Keys(layers)
	slices.Sort(names)
	return names, nil
}

func (l *Loader) AvailableExtensions() ([]string, error) {
	extensions, _, err := l.driver.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	names := maps.Keys(extensions)
	slices.Sort(names)
	return names, nil
}

func (l *Loader) CreateInstance(info bootstrap.InstanceCreateInfo) (bootstrap.InstanceHandle, error) {
	available, err := l.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	handle, _, err := l.driver.CreateInstance(nil, instanceCreateInfo(info, available, l.log))
	if err != nil {
		return nil, err
	}

	// A handle whose driver cannot be built has no loaded vkDestroyInstance.
	instanceDriver, err := l.driver.BuildInstanceDriver(handle)
	if err != nil {
		return nil, errors.Wrap(err, "vkng: cannot load instance functions")
	}

	instance := &Instance{
		driver:           instanceDriver,
		surfaceExtension: khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver),
		log:              l.log,
	}

	if info.EnableDebugMessenger {
		err = instance.setupDebugMessenger()
		if err != nil {
			instanceDriver.DestroyInstance(nil)
			return nil, err
		}
	}

	return instance, nil
}

func instanceCreateInfo(info bootstrap.InstanceCreateInfo, availableExtensions []string, log logrus.FieldLogger) core1_0.InstanceCreateInfo {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    info.ApplicationVersion,
		EngineName:            info.EngineName,
		EngineVersion:         info.EngineVersion,
		APIVersion:            info.APIVersion,
		EnabledExtensionNames: append([]string(nil), info.EnabledExtensionNames...),
		EnabledLayerNames:     info.EnabledLayerNames,
	}

	// Needed on MoltenVK, harmless elsewhere
	if slices.Contains(availableExtensions, khr_portability_enumeration.ExtensionName) {
		instanceOptions.EnabledExtensionNames = appendUnique(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if info.EnableDebugMessenger {
		instanceOptions.EnabledExtensionNames = appendUnique(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
		instanceOptions.Next = debugMessengerOptions(log)
	}

	return instanceOptions
}

func appendUnique(list []string, item string) []string {
	if slices.Contains(list, item) {
		return list
	}
	return append(list, item)
}
