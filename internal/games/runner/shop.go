package runner

// ItemID identifies a shop catalog entry.
type ItemID int

const (
	ItemHeart ItemID = iota
	ItemDoubleJump
	ItemImmortality
	ItemWideTrack
	itemCount
)

// ShopItem is one purchasable catalog entry as presented to the player.
type ShopItem struct {
	ID    ItemID
	Name  string
	Cost  int
	Owned bool // Already owned, or capped for repeatable items
}

// Catalog returns the shop entries with ownership resolved against the
// current state.
func Catalog(s *State) []ShopItem {
	shop := &s.cfg.Shop
	return []ShopItem{
		{ID: ItemHeart, Name: "Heart refill", Cost: shop.HeartCost, Owned: s.Lives >= s.MaxLives},
		{ID: ItemDoubleJump, Name: "Double jump", Cost: shop.DoubleJumpCost, Owned: s.OwnsDoubleJump},
		{ID: ItemImmortality, Name: "Immortality skill", Cost: shop.ImmortalityCost, Owned: s.OwnsImmortality},
		{ID: ItemWideTrack, Name: "Wide track", Cost: shop.WideTrackCost, Owned: s.LaneCount >= s.cfg.Track.MaxLaneCount},
	}
}

// Purchase attempts to buy an item. Fails softly: returns false when
// funds are insufficient, the item is already owned, or an upgrade is at
// its cap. No partial effects occur on failure.
func Purchase(s *State, id ItemID) bool {
	shop := &s.cfg.Shop
	switch id {
	case ItemHeart:
		if s.Lives >= s.MaxLives {
			return false
		}
		if !s.SpendGems(shop.HeartCost) {
			return false
		}
		return s.AddLife()
	case ItemDoubleJump:
		if s.OwnsDoubleJump {
			return false
		}
		if !s.SpendGems(shop.DoubleJumpCost) {
			return false
		}
		s.OwnsDoubleJump = true
		return true
	case ItemImmortality:
		if s.OwnsImmortality {
			return false
		}
		if !s.SpendGems(shop.ImmortalityCost) {
			return false
		}
		s.OwnsImmortality = true
		return true
	case ItemWideTrack:
		if s.LaneCount >= s.cfg.Track.MaxLaneCount {
			return false
		}
		if !s.SpendGems(shop.WideTrackCost) {
			return false
		}
		return s.ExpandLanes()
	default:
		return false
	}
}
