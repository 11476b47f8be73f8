package rewards

// Partner is a corporate reward partner whose offer unlocks with a badge.
type Partner struct {
	Name            string `json:"name"`
	Logo            string `json:"logo"`
	Offer           string `json:"offer"`
	RequiredBadgeID string `json:"required_badge_id"`
}

var partners = []Partner{
	{Name: "Checkers", Logo: "🛒", Offer: "R10 Voucher", RequiredBadgeID: "newbie"},
	{Name: "Woolworths", Logo: "🍎", Offer: "R50 Gift Card", RequiredBadgeID: "plastic_pro"},
	{Name: "Vida e Caffè", Logo: "☕", Offer: "Free Coffee", RequiredBadgeID: "hazard_hero"},
	{Name: "Takealot", Logo: "📦", Offer: "R100 Voucher", RequiredBadgeID: "waste_warrior"},
}

// Partners returns the static partner catalog.
func Partners() []Partner {
	out := make([]Partner, len(partners))
	copy(out, partners)
	return out
}

// PartnerByBadge looks up the partner offer tied to a badge id.
func PartnerByBadge(badgeID string) (Partner, bool) {
	for _, p := range partners {
		if p.RequiredBadgeID == badgeID {
			return p, true
		}
	}
	return Partner{}, false
}
