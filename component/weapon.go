package component

// UpgradeKind names one of the three purchasable upgrade tracks
type UpgradeKind uint8

const (
	UpgradeBulletSpeed UpgradeKind = iota
	UpgradeBurst
	UpgradeBounce
	UpgradeCount
)

func (u UpgradeKind) String() string {
	switch u {
	case UpgradeBulletSpeed:
		return "bullet_speed"
	case UpgradeBurst:
		return "burst"
	case UpgradeBounce:
		return "bounce"
	}
	return "unknown"
}

// ParseUpgradeKind resolves the names produced by String
func ParseUpgradeKind(s string) (UpgradeKind, bool) {
	for u := UpgradeKind(0); u < UpgradeCount; u++ {
		if u.String() == s {
			return u, true
		}
	}
	return 0, false
}
