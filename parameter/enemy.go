package parameter

// Enemy
const (
	EnemyScale = 0.75

	// EnemySpeed is world units per frame
	EnemySpeed = 0.075

	// EnemySpawnMin and EnemySpawnMax bound the spawn square, pinned axis takes one of them
	EnemySpawnMin = -FieldBound
	EnemySpawnMax = FieldBound
)
