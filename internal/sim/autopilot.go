package sim

import "github.com/vovakirdan/limitless/internal/core"

// Autopilot thresholds in world units.
const (
	pilotFleeDist   = 250.0
	pilotCrowdDist  = 200.0
	pilotShieldOn   = 80.0
	pilotShieldOff  = 200.0
	pilotAxisThresh = 0.3
)

// Autopilot is a scripted player for headless runs and soak tests.
// It backs away from the nearest enemy, drifts toward the arena center,
// aims at the nearest enemy and casts at most one ready ability per tick.
func Autopilot(snap Snapshot) Input {
	var in Input
	if snap.State != StatePlaying || len(snap.Enemies) == 0 {
		return in
	}

	p := snap.Player
	nearest := snap.Enemies[0]
	nd := core.Dist(p.Pos, nearest.Pos)
	crowd := 0
	for _, e := range snap.Enemies {
		d := core.Dist(p.Pos, e.Pos)
		if d < nd {
			nearest, nd = e, d
		}
		if d < pilotCrowdDist {
			crowd++
		}
	}

	if nd < pilotFleeDist {
		center := core.V(snap.ViewW/2, snap.ViewH/2)
		dir := p.Pos.Sub(nearest.Pos).Normalize().
			Add(center.Sub(p.Pos).Normalize().Scale(0.5))
		in.Left = dir.X < -pilotAxisThresh
		in.Right = dir.X > pilotAxisThresh
		in.Up = dir.Y < -pilotAxisThresh
		in.Down = dir.Y > pilotAxisThresh
	}

	in.Aim = nearest.Pos
	in.HasAim = true

	usable := make(map[AbilityKind]bool, len(snap.Abilities))
	for _, a := range snap.Abilities {
		usable[a.Kind] = a.Ready && a.Affordable
	}
	switch {
	case crowd >= 6 && usable[AbilityDomain]:
		in.Casts = []AbilityKind{AbilityDomain}
	case len(snap.Enemies) >= 4 && usable[AbilityPurple]:
		in.Casts = []AbilityKind{AbilityPurple}
	case usable[AbilityRed]:
		in.Casts = []AbilityKind{AbilityRed}
	case crowd >= 3 && usable[AbilityBlue]:
		in.Casts = []AbilityKind{AbilityBlue}
	}

	reserve := p.MaxEnergy * 0.2
	want := p.Limitless
	switch {
	case !p.Limitless && nd < pilotShieldOn && p.Energy > 2*reserve:
		want = true
	case p.Limitless && (nd > pilotShieldOff || p.Energy < reserve):
		want = false
	}
	in.ToggleLimitless = want != p.Limitless

	return in
}
