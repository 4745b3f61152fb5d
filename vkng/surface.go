package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v3/khr_surface"

	"github.com/vkngwrapper/devicesetup/bootstrap"
)

type Surface struct {
	extension khr_surface.ExtensionDriver
	surface   khr_surface.Surface
}

func (s *Surface) SupportsPresent(device bootstrap.PhysicalDeviceHandle, queueFamily int) (bool, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return false, errors.Newf("vkng: foreign physical device %T", device)
	}

	supported, _, err := s.extension.GetPhysicalDeviceSurfaceSupport(s.surface, physicalDevice.device, queueFamily)
	return supported, err
}

func (s *Surface) DestroySurface() {
	s.extension.DestroySurface(s.surface, nil)
}
