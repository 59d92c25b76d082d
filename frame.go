package spring

import "github.com/hajimehoshi/ebiten/v2"

// FrameDelta returns the fixed tick length in seconds for ebiten's current TPS.
// Pass it to Update from an ebiten.Game's Update method. When TPS is synced to
// the display (ebiten.SyncWithFPS) the default tick rate is assumed.
func FrameDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}
