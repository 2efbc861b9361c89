// internal/utils/math.go
package utils

import "math"

// NormalizeDegrees приводит угол к диапазону [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// -1e-15 + 360 в float64 даёт ровно 360
	if angle >= 360 {
		angle -= 360
	}
	return angle
}

// DegToRad переводит градусы в радианы.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// AimVector возвращает единичный вектор направления прицела в экранных координатах.
// Ось Y экрана направлена вниз, поэтому синус берётся с обратным знаком.
func AimVector(angleDeg float64) (float64, float64) {
	rad := DegToRad(angleDeg)
	return math.Cos(rad), -math.Sin(rad)
}
