package common

import (
	"testing"
)

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != 36 {
		t.Errorf("id should be a UUID, got %q", id)
	}
	if NewID() == NewID() {
		t.Error("ids must be unique")
	}
}

//Personal.AI order the ending
