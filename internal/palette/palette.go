// Package palette maps question categories to deterministic color
// descriptors for the card surface and the ambient background. Resolution
// is a pure function of (category, slide seed): the same slide always
// renders the same gradient, with no wall-clock or global RNG input.
package palette

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette describes the colors for one rendered card: the category strip
// plus a two-stop body gradient whose angle and midpoint carry the
// per-slide seeded variation.
type Palette struct {
	Strip    string
	From     string
	To       string
	AngleDeg int
	Midpoint float64
}

// Base is a category's fixed colors before per-slide variation.
type Base struct {
	Strip string
	From  string
	To    string
}

// builtin replaces the historical per-category switch chains with one
// lookup table. Keys are lowercased, trimmed category labels.
var builtin = map[string]Base{
	"party":   {Strip: "#f59e0b", From: "#7c2d12", To: "#f97316"},
	"family":  {Strip: "#34d399", From: "#064e3b", To: "#10b981"},
	"friends": {Strip: "#60a5fa", From: "#1e3a8a", To: "#3b82f6"},
	"love":    {Strip: "#f472b6", From: "#831843", To: "#ec4899"},
	"deep":    {Strip: "#a78bfa", From: "#4c1d95", To: "#8b5cf6"},
	"work":    {Strip: "#facc15", From: "#713f12", To: "#eab308"},
	"travel":  {Strip: "#2dd4bf", From: "#134e4a", To: "#14b8a6"},
}

// fallback covers unknown or malformed categories.
var fallback = Base{Strip: "#94a3b8", From: "#1e293b", To: "#475569"}

// Resolver resolves categories to palettes, with optional overrides
// layered over the builtin table.
type Resolver struct {
	table map[string]Base
}

// NewResolver builds a resolver. Overrides replace or extend the builtin
// table; keys are matched case-insensitively.
func NewResolver(overrides map[string]Base) *Resolver {
	table := make(map[string]Base, len(builtin)+len(overrides))
	for k, v := range builtin {
		table[k] = v
	}
	for k, v := range overrides {
		table[normalize(k)] = v
	}
	return &Resolver{table: table}
}

// Resolve returns the palette for a category on a particular slide. The
// slide seed perturbs the gradient angle and midpoint so adjacent cards of
// the same category do not render identically, while re-rendering the same
// slide never jitters.
func (r *Resolver) Resolve(category string, slideSeed int) Palette {
	base, ok := r.table[normalize(category)]
	if !ok {
		base = fallback
	}

	h := seedHash(category, slideSeed)
	angle := 15 + int(h%12)*15                  // 15..180 in 15 degree steps
	midpoint := 0.25 + float64((h>>8)%50)/100.0 // 0.25..0.74

	return Palette{
		Strip:    base.Strip,
		From:     base.From,
		To:       base.To,
		AngleDeg: angle,
		Midpoint: midpoint,
	}
}

// Interpolate blends two hex colors along the shortest hue arc using HCL
// space, clamped back into sRGB. Endpoints are returned verbatim so that
// t=0 and t=1 are exact; malformed colors degrade to whichever endpoint
// parses, never to an error.
func Interpolate(a, b string, t float64) string {
	if t <= 0 || a == b {
		return a
	}
	if t >= 1 {
		return b
	}

	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil && errB != nil:
		return a
	case errA != nil:
		return b
	case errB != nil:
		return a
	}
	return ca.BlendHcl(cb, t).Clamped().Hex()
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// seedHash folds the category label and slide seed into a stable 64-bit
// value. FNV-1a keeps the placement reproducible across runs and builds.
func seedHash(category string, slideSeed int) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalize(category)))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(strconv.Itoa(slideSeed)))
	return h.Sum64()
}
