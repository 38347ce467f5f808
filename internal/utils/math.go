// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// MapRange maps v from [inLo, inHi] onto [outLo, outHi] without clamping.
func MapRange(v, inLo, inHi, outLo, outHi float32) float32 {
	if inHi == inLo {
		return outLo
	}
	return Lerp(outLo, outHi, (v-inLo)/(inHi-inLo))
}
