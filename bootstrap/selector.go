package bootstrap

import (
	"github.com/sirupsen/logrus"
)

// Candidate is a physical device chosen for logical device creation.
// The runtime owns the handle.
type Candidate struct {
	Handle     PhysicalDeviceHandle
	Properties *PhysicalDeviceProperties
	Features   *PhysicalDeviceFeatures
	Indices    QueueFamilyIndices
}

// PickPhysicalDevice returns the first enumerated device whose queue
// families are complete for surface. Enumeration order is whatever the
// runtime reports.
func PickPhysicalDevice(instance *Instance, surface *Surface) (*Candidate, error) {
	physicalDevices, err := instance.handle.EnumeratePhysicalDevices()
	if err != nil {
		return nil, markf(err, ErrNoGraphicsDeviceFound, "pickPhysicalDevice")
	}

	if len(physicalDevices) == 0 {
		return nil, markf(nil, ErrNoGraphicsDeviceFound, "pickPhysicalDevice")
	}

	for deviceIdx, device := range physicalDevices {
		candidate := &Candidate{Handle: device}
		reportCandidate(instance.log.WithField("candidate", deviceIdx), candidate)

		indices, err := FindQueueFamilies(device, surface)
		if err != nil {
			instance.log.WithError(err).WithField("candidate", deviceIdx).Warn("could not resolve queue families")
			continue
		}

		if IsDeviceSuitable(indices) {
			candidate.Indices = indices
			return candidate, nil
		}
	}

	return nil, markf(nil, ErrNoSuitableGraphicsDeviceFound, "pickPhysicalDevice: %d devices checked", len(physicalDevices))
}

// IsDeviceSuitable only looks at queue family completeness.
func IsDeviceSuitable(indices QueueFamilyIndices) bool {
	return indices.IsComplete()
}

// reportCandidate fills in properties and features and logs them. A
// device that cannot be queried is still reported.
func reportCandidate(log logrus.FieldLogger, candidate *Candidate) {
	properties, err := candidate.Handle.Properties()
	if err != nil {
		log.WithError(err).Warn("could not get physical device properties")
	} else {
		candidate.Properties = properties
		log.WithFields(logrus.Fields{
			"name":                properties.DeviceName,
			"vendor_id":           properties.VendorID,
			"device_id":           properties.DeviceID,
			"type":                properties.DeviceType,
			"api_version":         properties.APIVersion,
			"driver_version":      properties.DriverVersion,
			"pipeline_cache_uuid": properties.PipelineCacheUUID.String(),
		}).Info("physical device")
	}

	features, err := candidate.Handle.Features()
	if err != nil {
		log.WithError(err).Warn("could not get physical device features")
		return
	}
	candidate.Features = features
	log.WithFields(logrus.Fields{
		"geometry_shader":     features.GeometryShader,
		"tessellation_shader": features.TessellationShader,
		"sampler_anisotropy":  features.SamplerAnisotropy,
	}).Debug("physical device features")
}
