package model

// LinkKind identifies how a matched TikTok link carries its video identifier.
type LinkKind int

const (
	// LinkLong is the canonical form: tiktok.com/@handle/video/<numeric id>
	LinkLong LinkKind = iota
	// LinkShort is a redirect slug: <xx>.tiktok.com/<slug>
	LinkShort
	// LinkMedium is the mobile form: m.tiktok.com/v/<numeric id>
	LinkMedium
)

// String returns a human readable name for the link kind
func (k LinkKind) String() string {
	switch k {
	case LinkLong:
		return "long"
	case LinkShort:
		return "short"
	case LinkMedium:
		return "medium"
	default:
		return "unknown"
	}
}

// LinkReference is the classifier's output: one matched TikTok link.
// For LinkLong and LinkMedium, RawID is the numeric video identifier.
// For LinkShort, RawID is the opaque slug and the identifier must be
// obtained by following the redirect. NormalizedURL always carries an
// explicit https scheme. Immutable once constructed.
type LinkReference struct {
	Kind          LinkKind
	RawID         string
	NormalizedURL string
}
