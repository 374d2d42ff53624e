package rng

import "math/rand"

// Source - источник равномерной случайности для игровых движков.
// Требование - честность раздачи, не криптостойкость.
// В тестах подменяется детерминированной реализацией.
type Source interface {
	Intn(n int) int
}

type defaultSource struct{}

func (defaultSource) Intn(n int) int {
	return rand.Intn(n)
}

// Default возвращает источник на глобальном генераторе math/rand.
// Глобальный генератор потокобезопасен, отдельный посев не требуется.
func Default() Source {
	return defaultSource{}
}
