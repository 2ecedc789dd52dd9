package runner

import (
	"testing"
)

func TestPurchaseInsufficientFunds(t *testing.T) {
	s := newTestState()
	s.Gems = 10

	if Purchase(s, ItemDoubleJump) {
		t.Error("Purchase should fail softly on insufficient funds")
	}
	if s.Gems != 10 {
		t.Errorf("Gems = %d after failed purchase, expected 10", s.Gems)
	}
	if s.OwnsDoubleJump {
		t.Error("No partial effect may occur on a failed purchase")
	}
}

func TestPurchaseDoubleJump(t *testing.T) {
	s := newTestState()
	s.Gems = s.cfg.Shop.DoubleJumpCost

	if !Purchase(s, ItemDoubleJump) {
		t.Fatal("Purchase should succeed with exact funds")
	}
	if !s.OwnsDoubleJump {
		t.Error("Double jump not owned after purchase")
	}
	if s.Gems != 0 {
		t.Errorf("Gems = %d, expected 0", s.Gems)
	}

	// Owned abilities cannot be bought twice
	s.Gems = s.cfg.Shop.DoubleJumpCost
	if Purchase(s, ItemDoubleJump) {
		t.Error("Repurchase of an owned ability should fail")
	}
	if s.Gems != s.cfg.Shop.DoubleJumpCost {
		t.Error("Failed repurchase must not charge")
	}
}

func TestPurchaseHeart(t *testing.T) {
	s := newTestState()
	s.Gems = s.cfg.Shop.HeartCost * 3
	s.Lives = s.MaxLives - 1

	if !Purchase(s, ItemHeart) {
		t.Fatal("Heart purchase should succeed below the life cap")
	}
	if s.Lives != s.MaxLives {
		t.Errorf("Lives = %d, expected %d", s.Lives, s.MaxLives)
	}

	// At full lives the purchase fails without charging
	gems := s.Gems
	if Purchase(s, ItemHeart) {
		t.Error("Heart purchase should fail at full lives")
	}
	if s.Gems != gems {
		t.Error("Failed heart purchase must not charge")
	}
}

func TestPurchaseWideTrack(t *testing.T) {
	s := newTestState()
	s.Gems = s.cfg.Shop.WideTrackCost * 2

	if !Purchase(s, ItemWideTrack) {
		t.Fatal("Wide track purchase should succeed")
	}
	if s.LaneCount != 5 {
		t.Errorf("LaneCount = %d, expected 5", s.LaneCount)
	}

	// Lane cap reached: soft fail, no charge
	gems := s.Gems
	if Purchase(s, ItemWideTrack) {
		t.Error("Wide track purchase should fail at the lane cap")
	}
	if s.Gems != gems {
		t.Error("Failed wide track purchase must not charge")
	}
}

func TestPurchaseImmortality(t *testing.T) {
	s := newTestState()
	s.Gems = s.cfg.Shop.ImmortalityCost

	if !Purchase(s, ItemImmortality) {
		t.Fatal("Immortality purchase should succeed")
	}
	if !s.OwnsImmortality {
		t.Error("Immortality not owned after purchase")
	}
}

func TestCatalogOwnership(t *testing.T) {
	s := newTestState()
	s.OwnsDoubleJump = true
	s.Lives = s.MaxLives

	items := Catalog(s)
	if len(items) != int(itemCount) {
		t.Fatalf("Catalog has %d items, expected %d", len(items), int(itemCount))
	}

	byID := map[ItemID]ShopItem{}
	for _, it := range items {
		byID[it.ID] = it
	}

	if !byID[ItemHeart].Owned {
		t.Error("Heart should read as capped at full lives")
	}
	if !byID[ItemDoubleJump].Owned {
		t.Error("Double jump should read as owned")
	}
	if byID[ItemImmortality].Owned {
		t.Error("Immortality should not read as owned")
	}
	if byID[ItemWideTrack].Owned {
		t.Error("Wide track should not read as capped on a 3-lane track")
	}
}
