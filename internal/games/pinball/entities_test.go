package pinball

import (
	"errors"
	"testing"
)

func TestNewRegistryResolvesEntities(t *testing.T) {
	reg, err := NewRegistry(testEntities())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	wantTiers := []Tier{TierOne, TierThree, TierFive, TierOne}
	if len(reg.Coins) != len(wantTiers) {
		t.Fatalf("got %d coins, want %d", len(reg.Coins), len(wantTiers))
	}
	for i, want := range wantTiers {
		if reg.Coins[i].Tier != want {
			t.Errorf("coin %d tier = %d, want %d", i, reg.Coins[i].Tier, want)
		}
	}

	if reg.Spinners[0].Direction != -1 {
		t.Errorf("plain spinner direction = %v, want -1", reg.Spinners[0].Direction)
	}
	if reg.Spinners[1].Direction != 1 {
		t.Errorf("mirrored spinner direction = %v, want 1", reg.Spinners[1].Direction)
	}

	if len(reg.Teleporters) != 1 || reg.Teleporters[0] != (TeleporterPair{In: hTeleIn, Out: hTeleOut}) {
		t.Errorf("teleporters = %+v", reg.Teleporters)
	}
}

func TestNewRegistryRejectsDefects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Entities)
	}{
		{"missing ball", func(e *Entities) { e.Ball = NoHandle }},
		{"missing flipper", func(e *Entities) { e.RightFlipper = NoHandle }},
		{"teleporter mismatch", func(e *Entities) { e.TeleportOut = nil }},
		{"unknown sprite", func(e *Entities) { e.Coins[0].Sprite = "coin2" }},
		{"coin without body", func(e *Entities) { e.Coins[1].Body = NoHandle }},
		{"bumper without body", func(e *Entities) { e.CircleBumpers[0] = NoHandle }},
		{"spinner without body", func(e *Entities) { e.Spinners[0].Body = NoHandle }},
		{"booster without body", func(e *Entities) { e.Boosters[0] = NoHandle }},
		{"teleporter without exit", func(e *Entities) { e.TeleportOut[0] = NoHandle }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEntities()
			tt.mutate(&e)
			_, err := NewRegistry(e)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error %v does not wrap ErrInvalidLayout", err)
			}
		})
	}
}

func TestTierForSprite(t *testing.T) {
	tests := []struct {
		sprite string
		want   Tier
		ok     bool
	}{
		{"coin1", TierOne, true},
		{"coin3", TierThree, true},
		{"coin5", TierFive, true},
		{"", 0, false},
		{"coin4", 0, false},
	}
	for _, tt := range tests {
		got, err := TierForSprite(tt.sprite)
		if (err == nil) != tt.ok {
			t.Errorf("TierForSprite(%q) error = %v, want ok=%t", tt.sprite, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("TierForSprite(%q) = %d, want %d", tt.sprite, got, tt.want)
		}
	}
}

func TestRespawnTracker(t *testing.T) {
	r := NewRespawnTracker(2, 5.0)
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	for i := 0; i < 5; i++ {
		if r.Tick(0, 1.0) {
			t.Fatalf("respawned after %d s, want > 5 s", i+1)
		}
	}
	if r.Elapsed(0) != 5.0 {
		t.Errorf("Elapsed = %v, want 5", r.Elapsed(0))
	}
	if !r.Tick(0, 1.0) {
		t.Fatal("expected respawn once elapsed exceeds 5 s")
	}
	if r.Elapsed(0) != 0 {
		t.Errorf("Elapsed after respawn = %v, want 0", r.Elapsed(0))
	}
	if r.Elapsed(1) != 0 {
		t.Errorf("untouched coin elapsed = %v, want 0", r.Elapsed(1))
	}

	r.Tick(1, 2.5)
	r.Reset(1)
	if r.Elapsed(1) != 0 {
		t.Errorf("Elapsed after Reset = %v, want 0", r.Elapsed(1))
	}
}
