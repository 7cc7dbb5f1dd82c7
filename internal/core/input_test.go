package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	got := f.Actions()
	if len(got) != 2 {
		t.Fatalf("Expected 2 actions, got %d", len(got))
	}
	if got[0] != ActionUp || got[1] != ActionLeft {
		t.Errorf("Actions out of order: %v", got)
	}
	if !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() reported wrong membership")
	}
}

func TestInputFrameKeepsRepeats(t *testing.T) {
	f := NewInputFrame()
	for _, a := range []Action{ActionDown, ActionDown, ActionNone, ActionConfirm} {
		f.Set(a)
	}

	got := f.Actions()
	expected := []Action{ActionDown, ActionDown, ActionConfirm}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Expected empty frame after Clear, got %d actions", f.Len())
	}
	if f.Has(ActionPause) {
		t.Error("Has() should be false after Clear")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("an action after Clear should be recorded again")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
