package component

// Projectile is an enemy shot. It carries no reference back to its owner.
type Projectile struct {
	OwnerKind EnemyKind
	Speed     float64
	Damage    int
}

var ProjectileComponent = NewComponent[Projectile]()
