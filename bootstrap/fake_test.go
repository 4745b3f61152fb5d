package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/vkngwrapper/core/v3/common"
)

// fakeRuntime is an in-memory graphics runtime. It records every create
// and destroy call in events.
type fakeRuntime struct {
	layers     []string
	extensions []string
	devices    []*fakePhysicalDevice

	layersErr       error
	instanceErr     error
	surfaceErr      error
	enumerateErr    error
	createDeviceErr error

	instanceInfo *InstanceCreateInfo
	deviceInfo   *DeviceCreateInfo
	events       []string
}

type fakeInstance struct{ rt *fakeRuntime }
type fakeSurface struct{ rt *fakeRuntime }
type fakeDevice struct{ rt *fakeRuntime }

type fakeQueue struct {
	family int
	index  int
}

type fakePhysicalDevice struct {
	name       string
	families   []QueueFamilyProperties
	present    []bool
	presentErr error
	propsErr   error

	presentQueries []int
}

type fakeWindow struct {
	extensions []string
}

func (rt *fakeRuntime) AvailableLayers() ([]string, error) {
	if rt.layersErr != nil {
		return nil, rt.layersErr
	}
	return rt.layers, nil
}

func (rt *fakeRuntime) AvailableExtensions() ([]string, error) {
	return rt.extensions, nil
}

func (rt *fakeRuntime) CreateInstance(info InstanceCreateInfo) (InstanceHandle, error) {
	if rt.instanceErr != nil {
		return nil, rt.instanceErr
	}
	rt.instanceInfo = &info
	rt.events = append(rt.events, "create instance")
	return &fakeInstance{rt: rt}, nil
}

func (i *fakeInstance) CreateSurface(window Window) (SurfaceHandle, error) {
	if i.rt.surfaceErr != nil {
		return nil, i.rt.surfaceErr
	}
	i.rt.events = append(i.rt.events, "create surface")
	return &fakeSurface{rt: i.rt}, nil
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]PhysicalDeviceHandle, error) {
	if i.rt.enumerateErr != nil {
		return nil, i.rt.enumerateErr
	}
	var devices []PhysicalDeviceHandle
	for _, device := range i.rt.devices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (i *fakeInstance) CreateDevice(device PhysicalDeviceHandle, info DeviceCreateInfo) (DeviceHandle, error) {
	if i.rt.createDeviceErr != nil {
		return nil, i.rt.createDeviceErr
	}
	i.rt.deviceInfo = &info
	i.rt.events = append(i.rt.events, "create device")
	return &fakeDevice{rt: i.rt}, nil
}

func (i *fakeInstance) DestroyInstance() {
	i.rt.events = append(i.rt.events, "destroy instance")
}

func (s *fakeSurface) SupportsPresent(device PhysicalDeviceHandle, queueFamily int) (bool, error) {
	d := device.(*fakePhysicalDevice)
	d.presentQueries = append(d.presentQueries, queueFamily)
	if d.presentErr != nil {
		return false, d.presentErr
	}
	if queueFamily >= len(d.present) {
		return false, nil
	}
	return d.present[queueFamily], nil
}

func (s *fakeSurface) DestroySurface() {
	s.rt.events = append(s.rt.events, "destroy surface")
}

func (d *fakeDevice) GetQueue(queueFamily, index int) Queue {
	return fakeQueue{family: queueFamily, index: index}
}

func (d *fakeDevice) DestroyDevice() {
	d.rt.events = append(d.rt.events, "destroy device")
}

func (q fakeQueue) QueueFamilyIndex() int {
	return q.family
}

func (d *fakePhysicalDevice) Properties() (*PhysicalDeviceProperties, error) {
	if d.propsErr != nil {
		return nil, d.propsErr
	}
	return &PhysicalDeviceProperties{
		DeviceName:        d.name,
		DeviceType:        "DiscreteGPU",
		VendorID:          0x10de,
		DeviceID:          0x2204,
		APIVersion:        common.Vulkan1_2,
		DriverVersion:     common.CreateVersion(525, 60, 11),
		PipelineCacheUUID: uuid.New(),
	}, nil
}

func (d *fakePhysicalDevice) Features() (*PhysicalDeviceFeatures, error) {
	return &PhysicalDeviceFeatures{GeometryShader: true}, nil
}

func (d *fakePhysicalDevice) QueueFamilyProperties() []QueueFamilyProperties {
	return d.families
}

func (w fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

// singleFamilyDevice has one queue family supporting graphics and presentation.
func singleFamilyDevice(name string) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		name:     name,
		families: []QueueFamilyProperties{{QueueFlags: QueueGraphics | QueueCompute | QueueTransfer, QueueCount: 16}},
		present:  []bool{true},
	}
}

// computeOnlyDevice never completes its queue families.
func computeOnlyDevice(name string) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		name:     name,
		families: []QueueFamilyProperties{{QueueFlags: QueueCompute, QueueCount: 4}},
		present:  []bool{false},
	}
}

func newFakeRuntime(devices ...*fakePhysicalDevice) *fakeRuntime {
	return &fakeRuntime{
		layers:     []string{"L"},
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface", "VK_EXT_debug_utils"},
		devices:    devices,
	}
}

func testWindow() fakeWindow {
	return fakeWindow{extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ValidationLayers = []string{"L"}
	return cfg
}

func newTestLogger() (*logrus.Logger, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func messages(hook *logtest.Hook) []string {
	var out []string
	for _, entry := range hook.AllEntries() {
		out = append(out, entry.Message)
	}
	return out
}

func newTestInstance(rt *fakeRuntime) *Instance {
	logger, _ := newTestLogger()
	return &Instance{handle: &fakeInstance{rt: rt}, log: logger}
}

func newTestSurface(rt *fakeRuntime) *Surface {
	logger, _ := newTestLogger()
	return &Surface{handle: &fakeSurface{rt: rt}, log: logger}
}

var errDriver = errors.New("VK_ERROR_INITIALIZATION_FAILED")

func intPtr(v int) *int {
	return &v
}
