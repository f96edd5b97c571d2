package model

import "sync/atomic"

// ObjectID ranges (convention):
//
//	0x00000000          : invalid
//	0x10000000-0x1FFFFFFF: actors (monsters, towers, bases)
//	0x20000000-0xFFFFFFFF: projectiles
const (
	actorIDBase      uint32 = 0x10000000
	projectileIDBase uint32 = 0x20000000
)

var (
	nextActorID      atomic.Uint32
	nextProjectileID atomic.Uint32
)

func init() {
	nextActorID.Store(actorIDBase)
	nextProjectileID.Store(projectileIDBase)
}

// NextActorID generates next unique actor object ID.
func NextActorID() uint32 {
	return nextActorID.Add(1)
}

// NextProjectileID generates next unique projectile object ID.
func NextProjectileID() uint32 {
	return nextProjectileID.Add(1)
}
