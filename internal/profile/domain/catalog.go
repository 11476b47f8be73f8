package domain

// Badge ids. The catalog is fixed: every profile gets exactly these badges,
// in this order, at creation time.
const (
	BadgeNewbie       = "newbie"
	BadgePlasticPro   = "plastic_pro"
	BadgeHazardHero   = "hazard_hero"
	BadgeWasteWarrior = "waste_warrior"
)

var badgeCatalog = []Badge{
	{ID: BadgeNewbie, Name: "New Recruit", Icon: "🌱", Description: "Earned your first Eco Points", Color: "from-green-400 to-emerald-600", Reward: "R10 Checkers Voucher"},
	{ID: BadgePlasticPro, Name: "Plastic Pro", Icon: "🥤", Description: "Recycled plastic 5 times", Color: "from-blue-400 to-indigo-600", Reward: "R50 Woolworths Card"},
	{ID: BadgeHazardHero, Name: "Hazard Hero", Icon: "🛡️", Description: "Reported 3 environmental hazards", Color: "from-red-400 to-pink-600", Reward: "Free Vida e Caffè Coffee"},
	{ID: BadgeWasteWarrior, Name: "Waste Warrior", Icon: "⚔️", Description: "Reached 1000 points", Color: "from-purple-400 to-fuchsia-600", Reward: "R100 Takealot Voucher"},
}

// unlockPredicates maps badge id to its unlock rule over the profile
// counters. Predicates read only points and reportsCount, never another
// badge, so evaluation order does not matter.
//
// plastic_pro has a catalog entry but no predicate: nothing tracks per-material
// recycle counts, so it can never unlock. Kept as-is on purpose.
var unlockPredicates = map[string]func(points, reports int) bool{
	BadgeNewbie:       func(points, _ int) bool { return points > 0 },
	BadgeHazardHero:   func(_, reports int) bool { return reports >= 3 },
	BadgeWasteWarrior: func(points, _ int) bool { return points >= 1000 },
}

// NewBadgeSet returns a fresh, fully locked copy of the badge catalog.
func NewBadgeSet() []Badge {
	out := make([]Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}
