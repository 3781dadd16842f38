package scenes

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/tuning"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings is the part of the simulation settings remembered between runs
type SavedSettings struct {
	MaxShapes int      `json:"maxShapes"`
	DropRate  float64  `json:"dropRate"`
	ShapeSize float64  `json:"shapeSize"`
	Gravity   float64  `json:"gravity"`
	ColorMode int      `json:"colorMode"`
	BaseColor [3]uint8 `json:"baseColor"`
	Polies    uint16   `json:"polies"`
	Mode      int      `json:"mode"`
}

// Store persists host settings through gdata. A nil *Store does nothing.
type Store struct {
	m *gdata.Manager
}

// OpenStore opens the per-user data directory of the app
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &Store{m: m}, nil
}

// Load applies the saved settings over s. Missing or unreadable data leaves s unchanged.
func (st *Store) Load(s tuning.Settings) tuning.Settings {
	if st == nil {
		return s
	}
	data, err := st.m.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return s
	}

	s.MaxShapes = saved.MaxShapes
	s.DropRate = saved.DropRate
	s.ShapeSize = saved.ShapeSize
	s.Gravity = saved.Gravity
	s.ColorMode = cfg.ColorMode(saved.ColorMode)
	s.BaseColor.R, s.BaseColor.G, s.BaseColor.B = saved.BaseColor[0], saved.BaseColor[1], saved.BaseColor[2]
	s.BaseColor.A = 255
	s.Polies = cfg.PolyType(saved.Polies)
	s.Mode = cfg.GameMode(saved.Mode)
	return s.Clamp()
}

// Save writes the user-adjustable part of s
func (st *Store) Save(s tuning.Settings) error {
	if st == nil {
		return nil
	}
	data, err := json.Marshal(SavedSettings{
		MaxShapes: s.MaxShapes,
		DropRate:  s.DropRate,
		ShapeSize: s.ShapeSize,
		Gravity:   s.Gravity,
		ColorMode: int(s.ColorMode),
		BaseColor: [3]uint8{s.BaseColor.R, s.BaseColor.G, s.BaseColor.B},
		Polies:    uint16(s.Polies),
		Mode:      int(s.Mode),
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := st.m.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
