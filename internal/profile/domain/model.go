package domain

import "time"

// WasteType is the material category assigned by the classification service.
type WasteType string

const (
	WastePlastic       WasteType = "PLASTIC"
	WasteGlass         WasteType = "GLASS"
	WasteMetal         WasteType = "METAL"
	WastePaper         WasteType = "PAPER"
	WasteElectronic    WasteType = "ELECTRONIC"
	WasteNonRecyclable WasteType = "NON_RECYCLABLE"
	WasteUnknown       WasteType = "UNKNOWN"
)

// Recyclable reports whether a material can be credited through the marketplace.
func (w WasteType) Recyclable() bool {
	switch w {
	case WastePlastic, WasteGlass, WasteMetal, WastePaper, WasteElectronic:
		return true
	}
	return false
}

// Sale verification statuses. The ledger only ever creates Pending sales;
// the verification sweep flips them to Verified.
const (
	SalePending  = "Pending Verification"
	SaleVerified = "Verified"
)

// Point bonuses credited by ledger operations.
const (
	RecycleBonusPoints = 50
	HazardBonusPoints  = 100
)

// SaleTransaction is a single recyclable-material listing. Immutable once
// created except for Status, which the verification sweep may advance.
type SaleTransaction struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	MaterialType WasteType `json:"material_type"`
	Weight       float64   `json:"weight"`
	Value        float64   `json:"value"`
	Status       string    `json:"status"`
}

// Badge is a named achievement. The set of badges is fixed at profile
// creation; only the Unlocked flag ever changes, and only false -> true.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Color       string `json:"color"`
	Reward      string `json:"reward,omitempty"`
}

// UserProfile is the root aggregate owned by the profile ledger. All
// mutation goes through the Apply* methods; handlers only ever see
// snapshots returned by the ledger service.
type UserProfile struct {
	UID          string            `json:"uid"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Avatar       string            `json:"avatar,omitempty"`
	Earnings     float64           `json:"earnings"`
	ReportsCount int               `json:"reports_count"`
	Points       int               `json:"points"`
	Badges       []Badge           `json:"badges"`
	SalesHistory []SaleTransaction `json:"sales_history"`
	IsMunicipal  bool              `json:"is_municipal,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewProfile creates a zeroed profile with the full badge catalog locked.
func NewProfile(uid, name, email, phone string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UID:          uid,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Badges:       NewBadgeSet(),
		SalesHistory: []SaleTransaction{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyRecycleSale credits an accepted listing: prepends the sale, adds the
// value to earnings and awards the fixed recycle bonus. Negative inputs are
// clamped to zero; validation belongs to the classification flow upstream.
func (p *UserProfile) ApplyRecycleSale(sale SaleTransaction) {
	if sale.Value < 0 {
		sale.Value = 0
	}
	if sale.Weight < 0 {
		sale.Weight = 0
	}
	sale.Status = SalePending

	p.SalesHistory = append([]SaleTransaction{sale}, p.SalesHistory...)
	p.Earnings += sale.Value
	p.Points += RecycleBonusPoints
	p.touch()
	p.EvaluateBadges()
}

// ApplyHazardReport credits a submitted hazard report.
func (p *UserProfile) ApplyHazardReport() {
	p.ReportsCount++
	p.Points += HazardBonusPoints
	p.touch()
	p.EvaluateBadges()
}

// ApplyGamePoints credits points earned in an arcade game.
func (p *UserProfile) ApplyGamePoints(points int) {
	if points < 0 {
		points = 0
	}
	p.Points += points
	p.touch()
	p.EvaluateBadges()
}

// ProfileUpdate carries the identity fields that may be changed after signup.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ApplyUpdate merges identity fields. Badges depend only on the numeric
// counters, so no badge pass runs here.
func (p *UserProfile) ApplyUpdate(u ProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	p.touch()
}

// EvaluateBadges flips Unlocked on every badge whose predicate holds for the
// current counters. Unlocks are one-way and the pass is idempotent: calling
// it again without a counter change leaves the profile unchanged.
func (p *UserProfile) EvaluateBadges() {
	for i := range p.Badges {
		if p.Badges[i].Unlocked {
			continue
		}
		pred, ok := unlockPredicates[p.Badges[i].ID]
		if !ok {
			continue
		}
		if pred(p.Points, p.ReportsCount) {
			p.Badges[i].Unlocked = true
		}
	}
}

// BadgeUnlocked reports whether the badge with the given id is unlocked.
func (p *UserProfile) BadgeUnlocked(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return b.Unlocked
		}
	}
	return false
}

func (p *UserProfile) touch() {
	p.UpdatedAt = time.Now().UTC()
}
