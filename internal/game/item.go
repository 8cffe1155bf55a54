package game

import "fmt"

type ItemKind int

const (
	KindFish ItemKind = iota
	KindCrustacean
	KindJunk
	KindTreasureChest
	KindLoot
)

func (k ItemKind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindCrustacean:
		return "crustacean"
	case KindJunk:
		return "junk"
	case KindTreasureChest:
		return "chest"
	case KindLoot:
		return "loot"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Item is a tagged union over everything a player can hold. Cooked only
// applies to fish and crustaceans; Heal only to loot.
type Item struct {
	Kind   ItemKind
	Name   string
	Cooked bool
	Heal   int
}

func FishItem(name string) Item       { return Item{Kind: KindFish, Name: name} }
func CrustaceanItem(name string) Item { return Item{Kind: KindCrustacean, Name: name} }
func JunkItem() Item                  { return Item{Kind: KindJunk, Name: OldBootName} }
func ChestItem() Item                 { return Item{Kind: KindTreasureChest, Name: TreasureChestName} }

func LootItem(spec TreasureSpec) Item {
	return Item{Kind: KindLoot, Name: spec.Name, Heal: spec.Heal}
}

// itemForCatch maps a fish-table outcome to its item variant.
func itemForCatch(name string) Item {
	switch name {
	case OldBootName:
		return JunkItem()
	case TreasureChestName:
		return ChestItem()
	default:
		return FishItem(name)
	}
}

func (it Item) Edible() bool {
	switch it.Kind {
	case KindFish, KindCrustacean:
		return true
	case KindJunk, KindTreasureChest, KindLoot:
		return false
	default:
		return false
	}
}

func (it Item) Healing() bool  { return it.Kind == KindLoot && it.Heal > 0 }
func (it Item) Curio() bool    { return it.Kind == KindLoot && it.Heal <= 0 }
func (it Item) Cookable() bool { return it.Edible() && !it.Cooked }

// TradeFish reports whether NPCs accept or steal the item.
func (it Item) TradeFish() bool { return it.Kind == KindFish }

func (it Item) DisplayName() string {
	if it.Cooked {
		return "Cooked " + it.Name
	}
	return it.Name
}

// Inventory is ordered by deposit; duplicates are expected.
type Inventory []Item

func (inv Inventory) Index(match func(Item) bool) int {
	for i, it := range inv {
		if match(it) {
			return i
		}
	}
	return -1
}

func (inv Inventory) Count(match func(Item) bool) int {
	n := 0
	for _, it := range inv {
		if match(it) {
			n++
		}
	}
	return n
}

func (inv Inventory) Has(match func(Item) bool) bool {
	return inv.Index(match) >= 0
}

// Remove takes the item at i out of the inventory and returns it.
func (inv *Inventory) Remove(i int) Item {
	items := *inv
	it := items[i]
	*inv = append(items[:i:i], items[i+1:]...)
	return it
}

func (inv *Inventory) Push(it Item) {
	*inv = append(*inv, it)
}

// Summary is the compact HUD line, e.g. "2ckd 3raw 1loot 1junk".
func (inv Inventory) Summary() string {
	var cooked, raw, loot, junk int
	for _, it := range inv {
		switch it.Kind {
		case KindFish, KindCrustacean:
			if it.Cooked {
				cooked++
			} else {
				raw++
			}
		case KindTreasureChest, KindLoot:
			loot++
		case KindJunk:
			junk++
		}
	}
	out := ""
	add := func(n int, label string) {
		if n == 0 {
			return
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d%s", n, label)
	}
	add(cooked, "ckd")
	add(raw, "raw")
	add(loot, "loot")
	add(junk, "junk")
	if out == "" {
		return "0"
	}
	return out
}
