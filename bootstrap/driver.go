package bootstrap

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/common"
)

// Loader exposes the global entry points of the graphics runtime.
type Loader interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(info InstanceCreateInfo) (InstanceHandle, error)
}

// InstanceHandle is a live runtime instance.
type InstanceHandle interface {
	CreateSurface(window Window) (SurfaceHandle, error)
	EnumeratePhysicalDevices() ([]PhysicalDeviceHandle, error)
	CreateDevice(device PhysicalDeviceHandle, info DeviceCreateInfo) (DeviceHandle, error)
	DestroyInstance()
}

// SurfaceHandle is a presentable surface created from an InstanceHandle.
type SurfaceHandle interface {
	SupportsPresent(device PhysicalDeviceHandle, queueFamily int) (bool, error)
	DestroySurface()
}

// PhysicalDeviceHandle is owned by the runtime, never by the application.
type PhysicalDeviceHandle interface {
	Properties() (*PhysicalDeviceProperties, error)
	Features() (*PhysicalDeviceFeatures, error)
	QueueFamilyProperties() []QueueFamilyProperties
}

// DeviceHandle is a logical device created from an InstanceHandle.
type DeviceHandle interface {
	GetQueue(queueFamily, index int) Queue
	DestroyDevice()
}

// Queue is borrowed from the DeviceHandle that returned it.
type Queue interface {
	QueueFamilyIndex() int
}

// Window is the native window a surface is bound to.
type Window interface {
	RequiredInstanceExtensions() []string
}

type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	EnabledExtensionNames []string
	EnabledLayerNames     []string

	// EnableDebugMessenger asks the runtime to route validation output to the logger.
	EnableDebugMessenger bool
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	EnabledLayerNames     []string
}

type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

type QueueFamilyProperties struct {
	QueueFlags QueueFlags
	QueueCount int
}

type PhysicalDeviceProperties struct {
	DeviceName        string
	DeviceType        string
	VendorID          uint32
	DeviceID          uint32
	APIVersion        common.APIVersion
	DriverVersion     common.Version
	PipelineCacheUUID uuid.UUID
}

type PhysicalDeviceFeatures struct {
	GeometryShader     bool
	TessellationShader bool
	SamplerAnisotropy  bool
}
