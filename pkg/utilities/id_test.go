package utilities

import "testing"

func TestNewKSUID(t *testing.T) {
	id := NewKSUID()
	if len(id) != 27 {
		t.Errorf("len(NewKSUID()) = %d, want 27", len(id))
	}
	if id == NewKSUID() {
		t.Error("two KSUIDs collided")
	}
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || b == "" {
		t.Fatal("NewRequestID() returned empty id")
	}
	if a == b {
		t.Error("two request ids collided")
	}
}

func TestNewRequestIDWithBadNodeFallsBack(t *testing.T) {
	// node ids outside the snowflake range cannot be initialized
	id := NewRequestIDWithNode(1 << 20)
	if len(id) != 27 {
		t.Errorf("fallback id length = %d, want a KSUID (27)", len(id))
	}
}
