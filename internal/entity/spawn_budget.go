package entity

// SpawnBudgetState ограничивает число одновременно живых юнитов особых типов.
// Принадлежит тому же World, что и коллекция юнитов.
type SpawnBudgetState struct {
	caps    map[string]int
	spawned map[string]int
	alive   map[string]int
}

// NewSpawnBudgetState копирует лимиты; тип без лимита не ограничен.
func NewSpawnBudgetState(caps map[string]int) *SpawnBudgetState {
	b := &SpawnBudgetState{
		caps:    make(map[string]int, len(caps)),
		spawned: make(map[string]int),
		alive:   make(map[string]int),
	}
	for k, v := range caps {
		b.caps[k] = v
	}
	return b
}

// CanSpawn reports whether another unit of kind fits under its cap.
func (b *SpawnBudgetState) CanSpawn(kind string) bool {
	limit, ok := b.caps[kind]
	return !ok || b.alive[kind] < limit
}

// Acquire резервирует место под юнита. Возвращает false, если лимит исчерпан.
func (b *SpawnBudgetState) Acquire(kind string) bool {
	if !b.CanSpawn(kind) {
		return false
	}
	b.spawned[kind]++
	b.alive[kind]++
	return true
}

// Release освобождает место после удаления юнита.
func (b *SpawnBudgetState) Release(kind string) {
	if b.alive[kind] > 0 {
		b.alive[kind]--
	}
}

// Alive — сколько юнитов типа сейчас живо.
func (b *SpawnBudgetState) Alive(kind string) int {
	return b.alive[kind]
}

// Spawned — сколько юнитов типа создано за всё время.
func (b *SpawnBudgetState) Spawned(kind string) int {
	return b.spawned[kind]
}
