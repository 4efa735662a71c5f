package core

import (
	"testing"
	"time"
)

func TestFixedStep(t *testing.T) {
	s := NewFixedStep(60)
	if s.Rate() != 60 {
		t.Errorf("Rate() = %d, expected 60", s.Rate())
	}
	if s.Interval() != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", s.Interval(), time.Second/60)
	}
	if got := s.Ticks(time.Second); got != 60 {
		t.Errorf("Ticks(1s) = %d, expected 60", got)
	}
}

func TestFixedStepFallback(t *testing.T) {
	for _, rate := range []int{0, -5} {
		if got := NewFixedStep(rate).Rate(); got != DefaultTickRate {
			t.Errorf("NewFixedStep(%d).Rate() = %d, expected %d", rate, got, DefaultTickRate)
		}
	}
}

func TestFixedStepZeroValue(t *testing.T) {
	var s FixedStep
	if s.Rate() != DefaultTickRate {
		t.Errorf("zero Rate() = %d, expected %d", s.Rate(), DefaultTickRate)
	}
	if s.Interval() != time.Second/DefaultTickRate {
		t.Errorf("zero Interval() = %v, expected %v", s.Interval(), time.Second/DefaultTickRate)
	}
	if got := s.Ticks(time.Second); got != DefaultTickRate {
		t.Errorf("zero Ticks(1s) = %d, expected %d", got, DefaultTickRate)
	}
}
