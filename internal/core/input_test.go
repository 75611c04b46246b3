package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionForward)
	if !f.Has(ActionJump) || !f.Has(ActionForward) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionForward) {
		t.Error("Clear should drop every action")
	}
}

func TestActionString(t *testing.T) {
	if ActionStrafeLeft.String() != "StrafeLeft" {
		t.Errorf("ActionStrafeLeft.String() = %q", ActionStrafeLeft.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestInputLatchHoldsUntilExpiry(t *testing.T) {
	l := NewInputLatch(3)
	l.Press(ActionForward)

	for tick := 0; tick < 3; tick++ {
		if !l.Frame().Has(ActionForward) {
			t.Fatalf("tick %d: forward should still be held", tick)
		}
	}
	if l.Frame().Has(ActionForward) {
		t.Error("forward should be released after the hold window")
	}
}

func TestInputLatchRepeatExtendsHold(t *testing.T) {
	l := NewInputLatch(2)
	l.Press(ActionJump)

	for tick := 0; tick < 10; tick++ {
		if !l.Frame().Has(ActionJump) {
			t.Fatalf("tick %d: repeated presses should keep jump held", tick)
		}
		l.Press(ActionJump) // auto-repeat arrives every tick
	}
}

func TestInputLatchReset(t *testing.T) {
	l := NewInputLatch(5)
	l.Press(ActionTurnLeft)
	l.Press(ActionRun)

	if f := l.Frame(); !f.Has(ActionTurnLeft) || !f.Has(ActionRun) {
		t.Fatal("pressed actions should be held")
	}

	l.Reset()
	if f := l.Frame(); f.Has(ActionRun) || f.Has(ActionTurnLeft) {
		t.Error("Reset should drop every held action")
	}
}
