// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownProjectile is returned when a defender references a projectile ID
// that is not present in the library.
var ErrUnknownProjectile = errors.New("unknown projectile")

// Library holds all unit, defender and projectile definitions, keyed by their ID.
type Library struct {
	Units       map[string]UnitDefinition
	Defenders   map[string]DefenderDefinition
	Projectiles map[string]ProjectileDefinition
}

// libraryFile — формат JSON-файла с определениями.
type libraryFile struct {
	Units       []UnitDefinition       `json:"units"`
	Defenders   []DefenderDefinition   `json:"defenders"`
	Projectiles []ProjectileDefinition `json:"projectiles"`
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() *Library {
	lib, err := newLibrary(libraryFile{
		Units:       defaultUnits(),
		Defenders:   defaultDefenders(),
		Projectiles: defaultProjectiles(),
	})
	if err != nil {
		panic(fmt.Sprintf("built-in definitions are inconsistent: %v", err))
	}
	return lib
}

// LoadLibrary reads a definitions file and builds a Library from it.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	return newLibrary(file)
}

func newLibrary(file libraryFile) (*Library, error) {
	lib := &Library{
		Units:       make(map[string]UnitDefinition, len(file.Units)),
		Defenders:   make(map[string]DefenderDefinition, len(file.Defenders)),
		Projectiles: make(map[string]ProjectileDefinition, len(file.Projectiles)),
	}
	for _, def := range file.Projectiles {
		lib.Projectiles[def.ID] = def
	}
	for _, def := range file.Units {
		if def.Size <= 0 {
			def.Size = 1
		}
		lib.Units[def.ID] = def
	}
	for _, def := range file.Defenders {
		if def.Projectile != "" {
			if _, ok := lib.Projectiles[def.Projectile]; !ok {
				return nil, fmt.Errorf("defender %q: %w %q", def.ID, ErrUnknownProjectile, def.Projectile)
			}
		}
		lib.Defenders[def.ID] = def
	}
	return lib, nil
}

// Unit возвращает определение юнита по ID.
func (l *Library) Unit(id string) (UnitDefinition, bool) {
	def, ok := l.Units[id]
	return def, ok
}

// Defender возвращает определение защитника по ID.
func (l *Library) Defender(id string) (DefenderDefinition, bool) {
	def, ok := l.Defenders[id]
	return def, ok
}

// Projectile возвращает определение снаряда по ID.
func (l *Library) Projectile(id string) (ProjectileDefinition, bool) {
	def, ok := l.Projectiles[id]
	return def, ok
}
