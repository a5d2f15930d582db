// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
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

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians переводит градусы в радианы.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate поворачивает вектор на угол (радианы).
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// Normalize возвращает вектор длины length в направлении (x, y).
// Для нулевого вектора возвращает (0, 0).
func Normalize(x, y, length float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l * length, y / l * length
}

// AngleVelocity - скорость под углом от вертикали: 0° - прямо по dir (dir=+1 вниз, -1 вверх).
func AngleVelocity(deg, speed, dir float64) (float64, float64) {
	rad := Radians(deg)
	return speed * math.Sin(rad), dir * speed * math.Cos(rad)
}
