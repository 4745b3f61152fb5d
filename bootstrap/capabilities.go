package bootstrap

var DefaultValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}

// DefaultInstanceExtensions is empty: the window supplies what presentation needs.
var DefaultInstanceExtensions = []string{}
