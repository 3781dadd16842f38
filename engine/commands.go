package engine

import (
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
)

// CommandKind names a runtime command
type CommandKind int

const (
	CmdFaster CommandKind = iota
	CmdSlower
	CmdBigger
	CmdSmaller
	CmdFloat
	CmdNormalGravity
	CmdHeavy
	CmdFreeze
	CmdColor  // Preset indexes config.Commands.ColorPresets
	CmdShapes // Preset indexes config.Commands.ShapePresets
	CmdReset
	CmdSolo
	CmdTwoPlayer
	CmdGameOff
)

var commandNames = map[CommandKind]string{
	CmdFaster:        "faster",
	CmdSlower:        "slower",
	CmdBigger:        "bigger",
	CmdSmaller:       "smaller",
	CmdFloat:         "float",
	CmdNormalGravity: "normal",
	CmdHeavy:         "heavy",
	CmdFreeze:        "freeze",
	CmdColor:         "color",
	CmdShapes:        "shapes",
	CmdReset:         "reset",
	CmdSolo:          "solo",
	CmdTwoPlayer:     "two players",
	CmdGameOff:       "game off",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one user request, as a key press or a recognised phrase would produce
type Command struct {
	Kind   CommandKind
	Preset int
}

// ApplyCommand changes the settings the way the command asks. It returns false for
// commands it does not understand, including out of range presets.
func (e *Engine) ApplyCommand(c Command) bool {
	s := e.Settings()
	cmds := cfg.Commands

	switch c.Kind {
	case CmdFaster:
		e.SetDropRate(gamemath.Clamp(s.DropRate*cmds.DropRateStep, cmds.MinDropRate, cmds.MaxDropRate))
	case CmdSlower:
		e.SetDropRate(gamemath.Clamp(s.DropRate/cmds.DropRateStep, cmds.MinDropRate, cmds.MaxDropRate))
	case CmdBigger:
		e.SetShapeSize(gamemath.Clamp(s.ShapeSize*cmds.SizeStep, cmds.MinShapeSize, cmds.MaxShapeSize))
	case CmdSmaller:
		e.SetShapeSize(gamemath.Clamp(s.ShapeSize/cmds.SizeStep, cmds.MinShapeSize, cmds.MaxShapeSize))
	case CmdFloat:
		e.SetGravity(cmds.FloatGravity)
	case CmdNormalGravity:
		e.SetGravity(cmds.NormalGravity)
	case CmdHeavy:
		e.SetGravity(cmds.HeavyGravity)
	case CmdFreeze:
		e.SetGravity(0)
	case CmdColor:
		if c.Preset < 0 || c.Preset >= len(cmds.ColorPresets) {
			return false
		}
		p := cmds.ColorPresets[c.Preset]
		e.SetShapesColor(p.Mode, p.Color)
	case CmdShapes:
		if c.Preset < 0 || c.Preset >= len(cmds.ShapePresets) {
			return false
		}
		e.SetPolies(cmds.ShapePresets[c.Preset].Polies)
	case CmdReset:
		e.Reset()
	case CmdSolo:
		e.SetGameMode(cfg.GameModeSolo)
	case CmdTwoPlayer:
		e.SetGameMode(cfg.GameModeTwoPlayer)
	case CmdGameOff:
		e.SetGameMode(cfg.GameModeOff)
	default:
		return false
	}
	return true
}
