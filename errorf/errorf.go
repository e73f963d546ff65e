// Package errorf is a convenience shortcut to use shorter names to construct an
// error that is printed at the level's log printer where it was made.
package errorf

import (
	"jsonq.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Err

func init() {
	F, E, W, I, D, T = lol.Main.Errorf.F, lol.Main.Errorf.E, lol.Main.Errorf.W,
		lol.Main.Errorf.I, lol.Main.Errorf.D, lol.Main.Errorf.T
}
