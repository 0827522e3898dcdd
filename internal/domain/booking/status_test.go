package booking

import "testing"

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Errorf("expected initial status pending, got %s", InitialStatus())
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAssigned, StatusCompleted, StatusCancelled} {
		if !IsValid(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}

	for _, s := range []Status{"", "scheduled", "PENDING", "done"} {
		if IsValid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
