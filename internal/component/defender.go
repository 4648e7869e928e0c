package component

import (
	"go-lane-defense/internal/defs"
	"go-lane-defense/pkg/lanegrid"
)

// Defender — стационарный защитник, занимающий клетку.
type Defender struct {
	DefID    string
	Behavior defs.DefenderBehavior
	Cell     lanegrid.Cell

	Health, MaxHealth int

	FireInterval int
	FireTimer    int

	Projectile    string
	Damage        int
	SplashDamage  int
	Range         float64
	PortalCapable bool

	FuseTimer int // Только для бомбы
	Destroyed bool
}

// NewDefender создаёт защитника в клетке cell.
func NewDefender(def defs.DefenderDefinition, cell lanegrid.Cell) *Defender {
	return &Defender{
		DefID:         def.ID,
		Behavior:      def.Behavior,
		Cell:          cell,
		Health:        def.Health,
		MaxHealth:     def.Health,
		FireInterval:  def.FireInterval,
		Projectile:    def.Projectile,
		Damage:        def.Damage,
		SplashDamage:  def.SplashDamage,
		Range:         def.Range,
		PortalCapable: def.PortalCapable,
		FuseTimer:     def.FuseTicks,
	}
}

// Lane возвращает ряд защитника.
func (d *Defender) Lane() int { return d.Cell.Lane }

// Pos возвращает позицию центра клетки.
func (d *Defender) Pos() float64 { return d.Cell.Center() }

// TakeDamage снимает здоровье и сообщает, был ли защитник уничтожен этим ударом.
func (d *Defender) TakeDamage(amount int) bool {
	if d.Destroyed || amount <= 0 {
		return false
	}
	d.Health -= amount
	if d.Health <= 0 {
		d.Health = 0
		d.Destroyed = true
		return true
	}
	return false
}
