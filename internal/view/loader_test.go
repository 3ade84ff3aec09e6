package view

import "testing"

func TestLoaderDiscardsStaleGeneration(t *testing.T) {
	var l Loader

	first := l.Begin()
	second := l.Begin()

	applied := l.Apply(first, func() { t.Error("stale fetch applied") })
	if applied {
		t.Error("Apply reported true for stale token")
	}

	ran := false
	if !l.Apply(second, func() { ran = true }) || !ran {
		t.Error("live token did not apply")
	}
}

func TestLoaderShutdownInvalidatesAll(t *testing.T) {
	var l Loader

	tok := l.Begin()
	l.Shutdown()

	if l.Apply(tok, func() {}) {
		t.Error("Apply ran after Shutdown")
	}
}
