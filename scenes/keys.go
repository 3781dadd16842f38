package scenes

import (
	"github.com/automoto/shapegame/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBinding maps keys to a runtime command
type KeyBinding struct {
	Keys    []ebiten.Key
	Command engine.Command
}

// Bindings is the keyboard layout of the playfield
var Bindings = []KeyBinding{
	{Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual}, Command: engine.Command{Kind: engine.CmdFaster}},
	{Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus}, Command: engine.Command{Kind: engine.CmdSlower}},
	{Keys: []ebiten.Key{ebiten.KeyB}, Command: engine.Command{Kind: engine.CmdBigger}},
	{Keys: []ebiten.Key{ebiten.KeyS}, Command: engine.Command{Kind: engine.CmdSmaller}},
	{Keys: []ebiten.Key{ebiten.KeyF}, Command: engine.Command{Kind: engine.CmdFloat}},
	{Keys: []ebiten.Key{ebiten.KeyN}, Command: engine.Command{Kind: engine.CmdNormalGravity}},
	{Keys: []ebiten.Key{ebiten.KeyH}, Command: engine.Command{Kind: engine.CmdHeavy}},
	{Keys: []ebiten.Key{ebiten.KeyZ}, Command: engine.Command{Kind: engine.CmdFreeze}},
	{Keys: []ebiten.Key{ebiten.KeyR}, Command: engine.Command{Kind: engine.CmdReset}},
	{Keys: []ebiten.Key{ebiten.KeyO}, Command: engine.Command{Kind: engine.CmdSolo}},
	{Keys: []ebiten.Key{ebiten.KeyT}, Command: engine.Command{Kind: engine.CmdTwoPlayer}},
	{Keys: []ebiten.Key{ebiten.KeyX}, Command: engine.Command{Kind: engine.CmdGameOff}},

	{Keys: []ebiten.Key{ebiten.Key1}, Command: engine.Command{Kind: engine.CmdColor, Preset: 0}},
	{Keys: []ebiten.Key{ebiten.Key2}, Command: engine.Command{Kind: engine.CmdColor, Preset: 1}},
	{Keys: []ebiten.Key{ebiten.Key3}, Command: engine.Command{Kind: engine.CmdColor, Preset: 2}},
	{Keys: []ebiten.Key{ebiten.Key4}, Command: engine.Command{Kind: engine.CmdColor, Preset: 3}},
	{Keys: []ebiten.Key{ebiten.Key5}, Command: engine.Command{Kind: engine.CmdColor, Preset: 4}},

	{Keys: []ebiten.Key{ebiten.KeyF1}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 0}},
	{Keys: []ebiten.Key{ebiten.KeyF2}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 1}},
	{Keys: []ebiten.Key{ebiten.KeyF3}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 2}},
	{Keys: []ebiten.Key{ebiten.KeyF4}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 3}},
	{Keys: []ebiten.Key{ebiten.KeyF5}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 4}},
	{Keys: []ebiten.Key{ebiten.KeyF6}, Command: engine.Command{Kind: engine.CmdShapes, Preset: 5}},
}

// pressedCommands returns the commands whose keys went down this frame
func pressedCommands() []engine.Command {
	var out []engine.Command
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if inpututil.IsKeyJustPressed(k) {
				out = append(out, b.Command)
				break
			}
		}
	}
	return out
}
