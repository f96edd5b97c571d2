package model

// fakeAnimation is a manually driven animation handle.
type fakeAnimation struct {
	playing  bool
	finished bool
	plays    int
	stops    int
}

func (f *fakeAnimation) Play() {
	f.playing = true
	f.finished = false
	f.plays++
}

func (f *fakeAnimation) Stop() {
	f.playing = false
	f.stops++
}

func (f *fakeAnimation) CurrentFrame() int { return 0 }
func (f *fakeAnimation) IsFinished() bool  { return f.finished }

// fakeController records calls and wants updates while need is true.
type fakeController struct {
	name       string
	need       bool
	actor      *Actor
	updates    int
	updateEnds int
	animEnds   int
	stopped    bool
	log        *[]string
}

func (f *fakeController) Bind(a *Actor) { f.actor = a }
func (f *fakeController) NeedUpdate() bool {
	return f.need && !f.stopped
}

func (f *fakeController) Update(float64) {
	f.updates++
	if f.log != nil {
		*f.log = append(*f.log, f.name+".update")
	}
}

func (f *fakeController) OnUpdateEnd() {
	f.updateEnds++
	if f.log != nil {
		*f.log = append(*f.log, f.name+".end")
	}
}

func (f *fakeController) OnAnimationEnd() { f.animEnds++ }
func (f *fakeController) Stop()           { f.stopped = true }

// fakeEffect is a minimal logical effect.
type fakeEffect struct {
	name   string
	unique bool
	merged []LogicalEffect
}

func (f *fakeEffect) Name() string                { return f.name }
func (f *fakeEffect) IsUnique() bool              { return f.unique }
func (f *fakeEffect) NeedToPerform(float64) bool  { return true }
func (f *fakeEffect) Perform()                    {}
func (f *fakeEffect) IsFinished() bool            { return false }
func (f *fakeEffect) OnRemove()                   {}
func (f *fakeEffect) OnMerge(other LogicalEffect) { f.merged = append(f.merged, other) }

func testStats(hp, speed float64) *Statistics {
	s := NewStatistics()
	s.SetValue(StatMaxHealth, hp)
	s.SetValue(StatSpeed, speed)
	return s
}
