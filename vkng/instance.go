package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vkngwrapper/devicesetup/bootstrap"
)

type Instance struct {
	driver           core1_0.CoreInstanceDriver
	surfaceExtension khr_surface.ExtensionDriver

	// destroyMessenger is set once a debug messenger exists.
	destroyMessenger func()

	log logrus.FieldLogger
}

func (i *Instance) setupDebugMessenger() error {
	debugDriver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	debugMessenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerOptions(i.log))
	if err != nil {
		return errors.Wrap(err, "vkng: cannot create debug messenger")
	}

	i.destroyMessenger = func() {
		debugDriver.DestroyDebugUtilsMessenger(debugMessenger, nil)
	}
	return nil
}

func (i *Instance) CreateSurface(window bootstrap.Window) (bootstrap.SurfaceHandle, error) {
	w, ok := window.(*Window)
	if !ok {
		return nil, errors.Newf("vkng: cannot create a surface for %T", window)
	}

	surface, err := vkng_sdl2.CreateSurface(i.driver.Instance(), i.surfaceExtension, w.window)
	if err != nil {
		return nil, err
	}

	return &Surface{
		extension: i.surfaceExtension,
		surface:   surface,
	}, nil
}

func (i *Instance) EnumeratePhysicalDevices() ([]bootstrap.PhysicalDeviceHandle, error) {
	physicalDevices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]bootstrap.PhysicalDeviceHandle, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, &PhysicalDevice{driver: i.driver, device: device})
	}

	return devices, nil
}

func (i *Instance) CreateDevice(device bootstrap.PhysicalDeviceHandle, info bootstrap.DeviceCreateInfo) (bootstrap.DeviceHandle, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return nil, errors.Newf("vkng: foreign physical device %T", device)
	}

	handle, _, err := i.driver.CreateDevice(physicalDevice.device, nil, deviceCreateInfo(info))
	if err != nil {
		return nil, err
	}

	// As with instances, the raw handle cannot be destroyed without its driver.
	deviceDriver, err := i.driver.BuildDeviceDriver(handle)
	if err != nil {
		return nil, errors.Wrap(err, "vkng: cannot load device functions")
	}

	return &Device{driver: deviceDriver}, nil
}

func deviceCreateInfo(info bootstrap.DeviceCreateInfo) core1_0.DeviceCreateInfo {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	for _, queue := range info.QueueCreateInfos {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queue.QueueFamilyIndex,
			QueuePriorities:  queue.QueuePriorities,
		})
	}

	return core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: info.EnabledExtensionNames,
		EnabledLayerNames:     info.EnabledLayerNames,
	}
}

func (i *Instance) DestroyInstance() {
	if i.destroyMessenger != nil {
		i.destroyMessenger()
		i.destroyMessenger = nil
	}

	i.driver.DestroyInstance(nil)
}
