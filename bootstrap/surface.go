package bootstrap

import (
	"github.com/sirupsen/logrus"
)

// Surface owns the presentable surface bound to a window. It must be
// destroyed before the Instance that created it.
type Surface struct {
	handle    SurfaceHandle
	log       logrus.FieldLogger
	destroyed bool
}

func CreateSurface(instance *Instance, window Window) (*Surface, error) {
	handle, err := instance.handle.CreateSurface(window)
	if err != nil {
		return nil, markf(err, ErrSurfaceCreationFailed, "createSurface")
	}

	return &Surface{handle: handle, log: instance.log}, nil
}

func (s *Surface) Handle() SurfaceHandle {
	return s.handle
}

func (s *Surface) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	s.destroyed = true
	s.handle.DestroySurface()
	s.log.Debug("surface destroyed")
}
