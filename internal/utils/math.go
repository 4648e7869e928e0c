// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// TurnToward поворачивает угол from к to не более чем на maxStep радиан.
func TurnToward(from, to, maxStep float64) float64 {
	from = NormalizeAngle(from)
	diff := NormalizeAngle(to - from)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff > 0 {
		return NormalizeAngle(from + maxStep)
	}
	return NormalizeAngle(from - maxStep)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
