package domain

import "strings"

// Tier is the subscription level attached to every request. The set is
// closed; all tier behavior is an exhaustive switch over these constants.
type Tier int

const (
	TierBasic Tier = iota
	TierPro
	TierUltra
	TierMega
)

// Quotas holds the hourly request limits per tier, loaded from configuration.
type Quotas struct {
	Basic int
	Pro   int
	Ultra int
	Mega  int
}

// TierFromLabel parses the subscription header value. Unknown or missing
// labels resolve to Basic on purpose: direct (non-proxied) callers may omit
// the header and still get the free tier, never an error.
func TierFromLabel(label string) Tier {
	switch strings.ToUpper(label) {
	case "PRO":
		return TierPro
	case "ULTRA":
		return TierUltra
	case "MEGA", "CUSTOM":
		return TierMega
	default:
		return TierBasic
	}
}

// Name returns the external display name.
func (t Tier) Name() string {
	switch t {
	case TierPro:
		return "pro"
	case TierUltra:
		return "ultra"
	case TierMega:
		return "mega"
	default:
		return "basic"
	}
}

// HourlyQuota returns the request limit per hourly window for this tier.
func (t Tier) HourlyQuota(q Quotas) int {
	switch t {
	case TierPro:
		return q.Pro
	case TierUltra:
		return q.Ultra
	case TierMega:
		return q.Mega
	default:
		return q.Basic
	}
}

// MaxPageSize returns the largest result page this tier may request.
func (t Tier) MaxPageSize() int {
	switch t {
	case TierPro:
		return 25
	case TierUltra:
		return 50
	case TierMega:
		return 100
	default:
		return 10
	}
}

// HasFullContent reports whether the tier receives untruncated article bodies.
func (t Tier) HasFullContent() bool {
	return t != TierBasic
}

// HasEntities reports whether the tier receives extracted-entity annotations.
func (t Tier) HasEntities() bool {
	return t == TierUltra || t == TierMega
}

// Next returns the plan one level up, for upgrade hints. Mega is the top
// and returns itself.
func (t Tier) Next() Tier {
	switch t {
	case TierBasic:
		return TierPro
	case TierPro:
		return TierUltra
	default:
		return TierMega
	}
}

// PriceLabel returns the marketplace list price for the plan.
func (t Tier) PriceLabel() string {
	switch t {
	case TierPro:
		return "$49/mo"
	case TierUltra:
		return "$99/mo"
	case TierMega:
		return "$199/mo"
	default:
		return "Free"
	}
}
