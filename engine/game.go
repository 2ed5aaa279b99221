package engine

import (
	"github.com/spaghettifunk/nova/engine/scene"
)

// Game is the application-facing half of the engine. The application
// fills in the hooks; the engine calls them at the right points of its
// lifecycle.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnOnStart         OnStart
	FnOnShutDown      Shutdown
}

// OnStart runs after the engine is initialized. This is where the
// application registers its scenes and selects the first one.
type OnStart func(controller *scene.Controller) error

// Shutdown runs before the engine tears its subsystems down.
type Shutdown func() error
