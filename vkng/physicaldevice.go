package vkng

import (
	"fmt"

	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/devicesetup/bootstrap"
)

type PhysicalDevice struct {
	driver core1_0.CoreInstanceDriver
	device core1_0.PhysicalDevice
}

func (d *PhysicalDevice) Properties() (*bootstrap.PhysicalDeviceProperties, error) {
	properties, err := d.driver.GetPhysicalDeviceProperties(d.device)
	if err != nil {
		return nil, err
	}

	return &bootstrap.PhysicalDeviceProperties{
		DeviceName:        properties.DriverName,
		DeviceType:        fmt.Sprint(properties.DriverType),
		VendorID:          properties.VendorID,
		DeviceID:          properties.DeviceID,
		APIVersion:        properties.APIVersion,
		DriverVersion:     properties.DriverVersion,
		PipelineCacheUUID: properties.PipelineCacheUUID,
	}, nil
}

func (d *PhysicalDevice) Features() (*bootstrap.PhysicalDeviceFeatures, error) {
	features := d.driver.GetPhysicalDeviceFeatures(d.device)
	return &bootstrap.PhysicalDeviceFeatures{
		GeometryShader:     features.GeometryShader,
		TessellationShader: features.TessellationShader,
		SamplerAnisotropy:  features.SamplerAnisotropy,
	}, nil
}

func (d *PhysicalDevice) QueueFamilyProperties() []bootstrap.QueueFamilyProperties {
	var families []bootstrap.QueueFamilyProperties
	for _, queueFamily := range d.driver.GetPhysicalDeviceQueueFamilyProperties(d.device) {
		families = append(families, bootstrap.QueueFamilyProperties{
			QueueFlags: queueFlags(queueFamily.QueueFlags),
			QueueCount: queueFamily.QueueCount,
		})
	}
	return families
}

var queueFlagMapping = []struct {
	vk   core1_0.QueueFlags
	flag bootstrap.QueueFlags
}{
	{core1_0.QueueGraphics, bootstrap.QueueGraphics},
	{core1_0.QueueCompute, bootstrap.QueueCompute},
	{core1_0.QueueTransfer, bootstrap.QueueTransfer},
	{core1_0.QueueSparseBinding, bootstrap.QueueSparseBinding},
}

func queueFlags(flags core1_0.QueueFlags) bootstrap.QueueFlags {
	var out bootstrap.QueueFlags
	for _, m := range queueFlagMapping {
		if flags&m.vk != 0 {
			out |= m.flag
		}
	}
	return out
}
