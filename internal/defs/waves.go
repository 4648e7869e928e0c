package defs

import "go-lane-defense/internal/utils"

// WaveDefinition описывает параметры одной волны.
type WaveDefinition struct {
	Units         []utils.WeightedChoice // Веса типов юнитов
	Count         int                    // Количество юнитов в волне
	SpawnInterval int                    // Интервал между появлением юнитов, тиков
	Delay         int                    // Пауза перед волной, тиков
}

// WavePatterns определяет последовательность волн.
// Ключ карты - это номер волны.
var WavePatterns = map[int]WaveDefinition{
	1: {Units: []utils.WeightedChoice{{ID: "walker", Weight: 1}}, Count: 4, SpawnInterval: 300, Delay: 600},
	2: {Units: []utils.WeightedChoice{{ID: "walker", Weight: 3}, {ID: "cone", Weight: 1}}, Count: 6, SpawnInterval: 240, Delay: 600},
	3: {Units: []utils.WeightedChoice{{ID: "walker", Weight: 2}, {ID: "cone", Weight: 2}, {ID: "runner", Weight: 1}}, Count: 8, SpawnInterval: 200, Delay: 480},
	4: {Units: []utils.WeightedChoice{{ID: "cone", Weight: 2}, {ID: "exploder", Weight: 1}}, Count: 8, SpawnInterval: 200, Delay: 480},
	5: {Units: []utils.WeightedChoice{{ID: "bucket", Weight: 2}, {ID: "trailer", Weight: 1}, {ID: "runner", Weight: 2}}, Count: 10, SpawnInterval: 180, Delay: 480},
	6: {Units: []utils.WeightedChoice{{ID: "bucket", Weight: 3}, {ID: "exploder", Weight: 1}, {ID: "giant", Weight: 1}}, Count: 12, SpawnInterval: 150, Delay: 600},
}
