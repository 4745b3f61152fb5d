package bootstrap

import (
	"github.com/sirupsen/logrus"
)

const queuePriority = float32(1.0)

// LogicalDevice owns the device handle. Its queues are borrowed from it
// and become invalid once it is destroyed.
type LogicalDevice struct {
	handle    DeviceHandle
	log       logrus.FieldLogger
	destroyed bool

	GraphicsQueue Queue
	PresentQueue  Queue
}

// CreateLogicalDevice requests one queue per unique family in indices.
// indices must be complete.
//
// The present queue is fetched from the graphics family. When the two
// families differ this is not the queue that was requested for
// presentation.
func CreateLogicalDevice(instance *Instance, candidate *Candidate, indices QueueFamilyIndices, cfg Config) (*LogicalDevice, error) {
	info := deviceCreateInfo(indices, cfg)

	handle, err := instance.handle.CreateDevice(candidate.Handle, info)
	if err != nil {
		return nil, markf(err, ErrLogicalDeviceCreationFailed, "createLogicalDevice")
	}

	device := &LogicalDevice{
		handle: handle,
		log:    instance.log,
	}
	device.GraphicsQueue = handle.GetQueue(*indices.GraphicsFamily, 0)
	device.PresentQueue = handle.GetQueue(*indices.GraphicsFamily, 0)

	instance.log.WithFields(logrus.Fields{
		"graphics_family": *indices.GraphicsFamily,
		"present_family":  *indices.PresentFamily,
		"queues":          len(info.QueueCreateInfos),
	}).Info("logical device created")

	return device, nil
}

func deviceCreateInfo(indices QueueFamilyIndices, cfg Config) DeviceCreateInfo {
	var info DeviceCreateInfo
	for _, queueFamily := range indices.uniqueFamilies() {
		info.QueueCreateInfos = append(info.QueueCreateInfos, DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	// Device layers are ignored by current loaders; older ones still read them.
	if cfg.EnableValidation {
		info.EnabledLayerNames = append(info.EnabledLayerNames, cfg.ValidationLayers...)
	}

	return info
}

func (d *LogicalDevice) Handle() DeviceHandle {
	return d.handle
}

func (d *LogicalDevice) Destroy() {
	if d == nil || d.destroyed {
		return
	}
	d.destroyed = true
	d.handle.DestroyDevice()
	d.log.Debug("logical device destroyed")
}
