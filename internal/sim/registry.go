package sim

// Registry owns every live entity collection of a session.
// The ability resolver and the step mutate through it; snapshots copy out of it.
type Registry struct {
	Player      Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	Particles   []Particle

	nextID EntityID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) allocID() EntityID {
	r.nextID++
	return r.nextID
}

// AddEnemy inserts an enemy, assigning it a fresh ID.
func (r *Registry) AddEnemy(e Enemy) *Enemy {
	e.ID = r.allocID()
	e.dead = false
	ptr := &e
	r.Enemies = append(r.Enemies, ptr)
	return ptr
}

// AddProjectile inserts a projectile, assigning it a fresh ID.
func (r *Registry) AddProjectile(p Projectile) *Projectile {
	p.ID = r.allocID()
	p.spent = false
	ptr := &p
	r.Projectiles = append(r.Projectiles, ptr)
	return ptr
}

// AddParticle appends a particle.
func (r *Registry) AddParticle(p Particle) {
	r.Particles = append(r.Particles, p)
}

// Clear drops every enemy, projectile and particle. IDs keep increasing.
func (r *Registry) Clear() {
	r.Enemies = nil
	r.Projectiles = nil
	r.Particles = nil
}

// compact drops dead enemies and spent projectiles, keeping insertion order.
func (r *Registry) compact() {
	enemies := r.Enemies[:0]
	for _, e := range r.Enemies {
		if !e.dead {
			enemies = append(enemies, e)
		}
	}
	for i := len(enemies); i < len(r.Enemies); i++ {
		r.Enemies[i] = nil
	}
	r.Enemies = enemies

	projectiles := r.Projectiles[:0]
	for _, p := range r.Projectiles {
		if !p.spent {
			projectiles = append(projectiles, p)
		}
	}
	for i := len(projectiles); i < len(r.Projectiles); i++ {
		r.Projectiles[i] = nil
	}
	r.Projectiles = projectiles
}

// removeProjectiles drops the projectiles at the given indices.
// Indices refer to the slice as it was when the set was built.
func (r *Registry) removeProjectiles(set map[int]struct{}) {
	if len(set) == 0 {
		return
	}
	for i := range set {
		r.Projectiles[i].spent = true
	}
	r.compact()
}
