package component

import "math"

// PortalNode — один конец портала.
type PortalNode struct {
	Lane int
	Pos  float64
}

// PortalLayout — пара связанных узлов.
type PortalLayout struct {
	A, B PortalNode
}

// PortalLink — пара порталов, переключающаяся между раскладками.
type PortalLink struct {
	Layouts  []PortalLayout
	Current  int
	Active   bool
	Timer    int // До следующего переключения
	Downtime int // Сколько тиков ещё неактивен
	Switches int
}

// NewPortalLink создаёт активную связку с первой раскладкой.
func NewPortalLink(interval int, layouts ...PortalLayout) *PortalLink {
	return &PortalLink{Layouts: layouts, Active: len(layouts) > 0, Timer: interval}
}

// Layout возвращает текущую раскладку.
func (p *PortalLink) Layout() PortalLayout {
	if len(p.Layouts) == 0 {
		return PortalLayout{}
	}
	return p.Layouts[p.Current]
}

// Nodes возвращает оба узла текущей раскладки.
func (p *PortalLink) Nodes() [2]PortalNode {
	l := p.Layout()
	return [2]PortalNode{l.A, l.B}
}

// Exit возвращает узел, парный entry.
func (p *PortalLink) Exit(entry PortalNode) PortalNode {
	l := p.Layout()
	if entry == l.A {
		return l.B
	}
	return l.A
}

// Ahead находит ближайший узел на ряду lane строго впереди pos по направлению dir.
func (p *PortalLink) Ahead(lane int, pos, dir float64) (PortalNode, bool) {
	if !p.Active {
		return PortalNode{}, false
	}
	best, found := PortalNode{}, false
	bestDist := math.MaxFloat64
	for _, n := range p.Nodes() {
		if n.Lane != lane {
			continue
		}
		d := (n.Pos - pos) * dir
		if d > 0 && d < bestDist {
			best, bestDist, found = n, d, true
		}
	}
	return best, found
}

// Touching находит узел ряда lane в пределах radius от pos.
func (p *PortalLink) Touching(lane int, pos, radius float64) (PortalNode, bool) {
	if !p.Active {
		return PortalNode{}, false
	}
	for _, n := range p.Nodes() {
		if n.Lane == lane && math.Abs(n.Pos-pos) <= radius {
			return n, true
		}
	}
	return PortalNode{}, false
}

// Near reports whether any node of either layout state lies within radius on lane,
// regardless of whether the link is active.
func (p *PortalLink) Near(lane int, pos, radius float64) bool {
	for _, n := range p.Nodes() {
		if n.Lane == lane && math.Abs(n.Pos-pos) <= radius {
			return true
		}
	}
	return false
}

// Advance отсчитывает таймеры. Возвращает true, если раскладка сменилась на этом тике.
func (p *PortalLink) Advance(interval, downtime int) bool {
	if len(p.Layouts) == 0 {
		return false
	}
	if p.Downtime > 0 {
		p.Downtime--
		if p.Downtime == 0 {
			p.Active = true
		}
		return false
	}
	if interval <= 0 || len(p.Layouts) < 2 {
		return false
	}
	p.Timer--
	if p.Timer > 0 {
		return false
	}
	p.Current = (p.Current + 1) % len(p.Layouts)
	p.Timer = interval
	p.Switches++
	if downtime > 0 {
		p.Active = false
		p.Downtime = downtime
	}
	return true
}
