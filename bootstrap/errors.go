package bootstrap

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrInstanceCreationFailed        = errors.New("instance creation failed")
	ErrSurfaceCreationFailed         = errors.New("surface creation failed")
	ErrNoGraphicsDeviceFound         = errors.New("failed to find GPUs with Vulkan support")
	ErrNoSuitableGraphicsDeviceFound = errors.New("failed to find a suitable GPU")
	ErrLogicalDeviceCreationFailed   = errors.New("logical device creation failed")
	ErrValidationLayersUnavailable   = errors.New("validation layers requested, but not available")
)

// Kind identifies which pipeline stage failed.
type Kind int

const (
	KindNone Kind = iota
	KindInstanceCreationFailed
	KindSurfaceCreationFailed
	KindNoGraphicsDeviceFound
	KindNoSuitableGraphicsDeviceFound
	KindLogicalDeviceCreationFailed
	KindValidationLayersUnavailable
	KindUnknown
)

var kindNames = map[Kind]string{
	KindNone:                          "None",
	KindInstanceCreationFailed:        "InstanceCreationFailed",
	KindSurfaceCreationFailed:         "SurfaceCreationFailed",
	KindNoGraphicsDeviceFound:         "NoGraphicsDeviceFound",
	KindNoSuitableGraphicsDeviceFound: "NoSuitableGraphicsDeviceFound",
	KindLogicalDeviceCreationFailed:   "LogicalDeviceCreationFailed",
	KindValidationLayersUnavailable:   "ValidationLayersUnavailable",
	KindUnknown:                       "Unknown",
}

func (k Kind) String() string {
	return kindNames[k]
}

var kindSentinels = []struct {
	kind     Kind
	sentinel error
}{
	{KindInstanceCreationFailed, ErrInstanceCreationFailed},
	{KindSurfaceCreationFailed, ErrSurfaceCreationFailed},
	{KindNoGraphicsDeviceFound, ErrNoGraphicsDeviceFound},
	{KindNoSuitableGraphicsDeviceFound, ErrNoSuitableGraphicsDeviceFound},
	{KindLogicalDeviceCreationFailed, ErrLogicalDeviceCreationFailed},
	{KindValidationLayersUnavailable, ErrValidationLayersUnavailable},
}

// KindOf reports the failure kind carried by err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	for _, ks := range kindSentinels {
		if errors.Is(err, ks.sentinel) {
			return ks.kind
		}
	}

	return KindUnknown
}

// kindError tags a wrapped runtime cause with a failure kind. The message
// and chain are those of the cause; Is also answers for the kind.
type kindError struct {
	error
	kind error
}

func (e *kindError) Unwrap() error { return e.error }

func (e *kindError) Is(target error) bool { return target == e.kind }

// markf wraps a runtime cause with context and tags it with a failure kind.
func markf(cause error, kind error, format string, args ...interface{}) error {
	if cause == nil {
		return errors.Wrapf(kind, format, args...)
	}
	return errors.Mark(&kindError{error: errors.Wrapf(cause, format, args...), kind: kind}, kind)
}
