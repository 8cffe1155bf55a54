package game

import "time"

// tickVitals runs hunger and starvation for one frame. It runs for every
// player every tick, whatever the activity, overlay or bed state.
func (p *Player) tickVitals(dt time.Duration, t Tuning) {
	if t.HungerInterval <= 0 {
		return
	}
	p.hungerTimer += dt
	for p.hungerTimer >= t.HungerInterval {
		p.hungerTimer -= t.HungerInterval
		if p.Hunger < p.MaxHunger {
			p.Hunger = min(p.MaxHunger, p.Hunger+t.HungerStep)
		}
		if p.Hunger >= p.MaxHunger && p.HP > 1 {
			p.HP = max(1, p.HP-t.StarveDamage)
		}
	}
}

func (p *Player) Starving() bool { return p.Hunger >= p.MaxHunger }
