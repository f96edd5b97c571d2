package data

import (
	"github.com/udisondev/towerdefence/internal/ai"
	"github.com/udisondev/towerdefence/internal/game/controller"
	"github.com/udisondev/towerdefence/internal/model"
)

// deathControllerKind is required by creatures whose death the game counts.
const deathControllerKind = "DeathController"

// controllerKinds maps catalog controller kind → constructor.
var controllerKinds = map[string]func() model.Controller{
	"PathController":                   func() model.Controller { return controller.NewPathController() },
	"AttackController":                 func() model.Controller { return controller.NewAttackController() },
	"RangeAttackController":            func() model.Controller { return controller.NewRangeAttackController() },
	"NotRotatingRangeAttackController": func() model.Controller { return controller.NewNotRotatingRangeAttackController() },
	deathControllerKind:                func() model.Controller { return controller.NewDeathController() },
}

// rangedKinds fire bullets and need a positive bullet speed.
var rangedKinds = map[string]bool{
	"RangeAttackController":            true,
	"NotRotatingRangeAttackController": true,
}

// aiKinds maps catalog AI kind → constructor.
var aiKinds = map[string]func() model.AI{
	"StandardAI":     func() model.AI { return ai.NewStandardAI() },
	"AttackOnlyBase": func() model.AI { return ai.NewAttackOnlyBase() },
}
