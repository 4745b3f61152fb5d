package bootstrap

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// IsLayerSetSupported reports whether every requested layer is offered
// by the runtime. An empty request is always supported. A failure to
// enumerate layers is reported as unsupported.
func IsLayerSetSupported(loader Loader, requested []string, log logrus.FieldLogger) bool {
	if len(requested) == 0 {
		return true
	}

	available, err := loader.AvailableLayers()
	if err != nil {
		log.WithError(err).Warn("could not enumerate instance layers")
		return false
	}

	return LayersSupported(available, requested)
}

// LayersSupported matches layer names exactly, case included.
func LayersSupported(available, requested []string) bool {
	for _, layer := range requested {
		if !slices.Contains(available, layer) {
			return false
		}
	}
	return true
}
