package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type stage struct {
	name   string
	system System
}

// Pipeline runs the per-tick systems in a fixed order. Later stages see
// what earlier stages did within the same tick.
type Pipeline struct {
	stages []stage
	halt   func(*World) bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Then appends a named stage. Nil systems are skipped.
func (p *Pipeline) Then(name string, system System) *Pipeline {
	if system == nil {
		return p
	}
	p.stages = append(p.stages, stage{name: name, system: system})
	return p
}

// HaltWhen sets a condition checked before every stage; once it holds the
// rest of the tick is skipped.
func (p *Pipeline) HaltWhen(fn func(*World) bool) *Pipeline {
	p.halt = fn
	return p
}

func (p *Pipeline) Update(w *World) {
	for _, s := range p.stages {
		if p.halt != nil && p.halt(w) {
			return
		}
		s.system.Update(w)
	}
}

// Stages lists the stage names in run order.
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.name)
	}
	return names
}
