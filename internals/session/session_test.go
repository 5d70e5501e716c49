package session

import (
	"errors"
	"testing"
)

func TestCurrentBeforeEstablish(t *testing.T) {
	s := New()
	if _, err := s.Current(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Current() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestEstablishThenCurrent(t *testing.T) {
	s := New()
	s.Establish(42)

	id, err := s.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if id != 42 {
		t.Errorf("Current() = %d, want 42", id)
	}
}

func TestEstablishOverwrites(t *testing.T) {
	s := New()
	s.Establish(1)
	s.Establish(2)

	id, err := s.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if id != 2 {
		t.Errorf("Current() = %d, want 2", id)
	}
}
