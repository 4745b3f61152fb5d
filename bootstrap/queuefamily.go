package bootstrap

// QueueFamilyIndices are only valid for the device and surface they
// were resolved against.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// uniqueFamilies returns the graphics family followed by the present
// family when it differs. Panics on incomplete indices.
func (i QueueFamilyIndices) uniqueFamilies() []int {
	if !i.IsComplete() {
		panic("bootstrap: queue family indices are incomplete")
	}

	families := []int{*i.GraphicsFamily}
	if *i.PresentFamily != *i.GraphicsFamily {
		families = append(families, *i.PresentFamily)
	}
	return families
}

// FindQueueFamilies walks the device's queue families in index order
// and stops as soon as both a graphics and a present family are known.
// The result may be incomplete.
func FindQueueFamilies(device PhysicalDeviceHandle, surface *Surface) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}

	for queueFamilyIdx, queueFamily := range device.QueueFamilyProperties() {
		if queueFamily.QueueFlags&QueueGraphics != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		supported, err := surface.handle.SupportsPresent(device, queueFamilyIdx)
		if err != nil {
			return indices, err
		}

		if supported {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = queueFamilyIdx
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
