package main

import (
	"os"
	"runtime"

	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vkngwrapper/devicesetup/bootstrap"
	"github.com/vkngwrapper/devicesetup/vkng"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

type Application struct {
	log *logrus.Logger
	cfg bootstrap.Config

	window *vkng.Window
	vulkan *bootstrap.Context
}

func (app *Application) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *Application) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	window, err := vkng.NewWindow("Vulkan", windowWidth, windowHeight)
	if err != nil {
		sdl.Quit()
		return err
	}
	app.window = window

	return nil
}

func (app *Application) initVulkan() error {
	loader, err := vkng.NewLoader(sdl.VulkanGetVkGetInstanceProcAddr(), app.log)
	if err != nil {
		return err
	}

	app.vulkan, err = bootstrap.Bootstrap(loader, app.window, app.cfg, app.log)
	return err
}

func (app *Application) mainLoop() error {
	for app.window.PollEvents() {
	}

	return nil
}

func (app *Application) cleanup() {
	app.vulkan.Destroy()

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	runtime.LockOSThread()

	logger := logrus.New()
	level, err := logrus.ParseLevel(envy.Get("DEVICESETUP_LOG_LEVEL", "info"))
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	logger.SetLevel(level)

	cfg, err := bootstrap.ConfigFromEnv()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	app := &Application{
		log: logger,
		cfg: cfg,
	}

	err = app.Run()
	if err != nil {
		logger.WithField("kind", bootstrap.KindOf(err)).Error(err)
		os.Exit(1)
	}
}
