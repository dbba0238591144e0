package events

import "testing"

func TestCafeGroup(t *testing.T) {
	if got := CafeGroup("66f1a2", AudienceKitchen); got != "cafe:66f1a2:kitchen" {
		t.Errorf("CafeGroup = %q", got)
	}
}
