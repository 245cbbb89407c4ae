package component

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnemyKind = errors.New("enemy: unknown kind")

type EnemyKind uint8

const (
	EnemyBlob EnemyKind = iota + 1
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBlob:
		return "blob"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("enemy(%d)", uint8(k))
	}
}

func (k EnemyKind) Valid() bool {
	return k == EnemyBlob || k == EnemyBoss
}

// ParseEnemyKind maps a roster name to a kind. Unknown names are rejected.
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blob":
		return EnemyBlob, nil
	case "boss":
		return EnemyBoss, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, name)
	}
}

// Enemy is the per-instance state of a hostile entity. Times are in ms.
type Enemy struct {
	Kind          EnemyKind
	Health        int
	Speed         float64
	ShootCooldown int64
	LastShootTime int64
}

var EnemyComponent = NewComponent[Enemy]()
