package vkng

import (
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/devicesetup/bootstrap"
)

type Device struct {
	driver core1_0.CoreDeviceDriver
}

type Queue struct {
	queue       core1_0.Queue
	familyIndex int
}

func (d *Device) GetQueue(queueFamily, index int) bootstrap.Queue {
	return &Queue{
		queue:       d.driver.GetQueue(queueFamily, index),
		familyIndex: queueFamily,
	}
}

func (d *Device) DestroyDevice() {
	d.driver.DestroyDevice(nil)
}

func (q *Queue) QueueFamilyIndex() int {
	return q.familyIndex
}

// Queue returns the underlying vkngwrapper queue.
func (q *Queue) Queue() core1_0.Queue {
	return q.queue
}
