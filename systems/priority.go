package systems

// Tick order. Lower runs first.
const (
	PriorityCharge     = 10
	PriorityFire       = 20
	PrioritySpawn      = 30
	PriorityDifficulty = 31
	PriorityKinematics = 40
	PriorityEffects    = 45
	PriorityCollision  = 50
	PriorityBuff       = 60
	PriorityStarfield  = 70
)
