package model

// Controller is a behaviour unit that can take exclusive control of an
// actor for one frame. Controllers are checked in list order; the first
// one whose NeedUpdate returns true runs.
type Controller interface {
	// Bind attaches controller to its actor. Called once by Actor.AddController.
	Bind(a *Actor)

	// NeedUpdate reports whether this controller wants to drive the actor this frame.
	NeedUpdate() bool

	// Update drives the actor.
	Update(dt float64)

	// OnUpdateEnd is called when another controller took over.
	OnUpdateEnd()

	// OnAnimationEnd is called when the current animation finished.
	OnAnimationEnd()

	// Stop disables controller permanently (actor died).
	Stop()
}

// Targeter is implemented by controllers that accept an attack target.
type Targeter interface {
	Target() *Actor
	SetTarget(target *Actor)
}

// PathFollower is implemented by controllers that walk a path.
type PathFollower interface {
	SetPath(path []Vec)
	SetCurrentPoint(index int)
}

// AI selects targets and hands them to controllers.
type AI interface {
	Bind(a *Actor)
	Update(dt float64)
}

// LogicalEffect is a timed or instant modification applied to an actor.
type LogicalEffect interface {
	Name() string
	IsUnique() bool

	// NeedToPerform advances effect clock and reports whether Perform must run.
	NeedToPerform(dt float64) bool
	Perform()
	IsFinished() bool

	// OnRemove detaches everything the effect installed.
	OnRemove()

	// OnMerge absorbs a same-named unique effect arriving while this one is active.
	OnMerge(other LogicalEffect)
}

// Animation is a playback handle supplied by the presentation layer.
type Animation interface {
	Play()
	Stop()
	CurrentFrame() int
	IsFinished() bool
}
