package world

// Gauge is a bounded resource meter.
type Gauge struct {
	Cur float64
	Max float64
}

// Spend deducts amount when the gauge covers it. Reports whether the
// deduction happened.
func (g *Gauge) Spend(amount float64) bool {
	if amount < 0 || amount > g.Cur {
		return false
	}
	g.Cur -= amount
	return true
}

// Restore adds amount up to the gauge maximum.
func (g *Gauge) Restore(amount float64) {
	if amount <= 0 {
		return
	}
	g.Cur += amount
	if g.Cur > g.Max {
		g.Cur = g.Max
	}
}

// Actor is a player or NPC inhabiting a shell.
type Actor struct {
	ID           ActorID
	Name         string
	Location     PlaceID
	CurrentShell ShellID
	Shells       map[ShellID]*Shell
	AP           Gauge
}

// Shell returns the actor's current shell.
func (a *Actor) Shell() (*Shell, bool) {
	sh, ok := a.Shells[a.CurrentShell]
	return sh, ok
}
