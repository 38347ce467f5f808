package utils

import (
	"math/rand"
	"time"
)

// PRNGService: это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всём скетче.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Int63 returns a non-negative pseudo-random 63-bit integer, handy for
// seeding other generators from this one.
func (s *PRNGService) Int63() int64 {
	return s.rng.Int63()
}

// RangeFloat32 returns a uniform value in [lo, hi). Swapped bounds are
// accepted; equal bounds return lo.
func (s *PRNGService) RangeFloat32(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	v := lo + (hi-lo)*s.rng.Float32()
	if v > hi { // float32 rounding
		v = hi
	}
	return v
}
