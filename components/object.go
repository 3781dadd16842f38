package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds a shape's box in the broad-phase space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broad-phase spatial hash covering the scene
var Space = donburi.NewComponentType[resolv.Space]()
