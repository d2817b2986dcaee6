// Package band resolves settlement bands from discrete evidentiary flags.
// Band selection is driven purely by flag-set cardinality per vocabulary and
// never feeds back into the scoring engine; the band is display metadata for
// a snapshot, recomputed from current flags on every call.
package band

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band identifies one of the three disjoint settlement bands, strictly
// ordered BASE < VALIDATION < TAIL.
type Band string

const (
	BandBase       Band = "BASE"
	BandValidation Band = "VALIDATION"
	BandTail       Band = "TAIL"
)

// Flag-count thresholds for band activation. TAIL strictly dominates
// VALIDATION, which strictly dominates BASE.
const (
	tailFlagsRequired       = 2
	validationFlagsRequired = 1
)

// Range is a fixed GBP settlement range.
type Range struct {
	Min decimal.Decimal `json:"min_gbp"`
	Max decimal.Decimal `json:"max_gbp"`
}

// String formats the range in millions, e.g. "£5.0m–£9.0m".
func (r Range) String() string {
	return fmt.Sprintf("£%sm–£%sm", inMillions(r.Min), inMillions(r.Max))
}

func inMillions(v decimal.Decimal) string {
	return v.Div(decimal.NewFromInt(1_000_000)).StringFixed(1)
}

func gbp(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Band ranges are pairwise disjoint: the £15m upper bound exists only in
// TAIL, BASE never exceeds £4m, VALIDATION never exceeds £9m.
var bandRanges = map[Band]Range{
	BandBase:       {Min: gbp(2_500_000), Max: gbp(4_000_000)},
	BandValidation: {Min: gbp(5_000_000), Max: gbp(9_000_000)},
	BandTail:       {Min: gbp(12_000_000), Max: gbp(15_000_000)},
}

var bandNames = map[Band]string{
	BandBase:       "Base Settlement Band",
	BandValidation: "Validation Settlement Band",
	BandTail:       "Tail Risk Settlement Band",
}

var bandMeanings = map[Band]string{
	BandBase:       "Authorisable today with no external validation",
	BandValidation: "Requires an external validation event (hearing, SRA, insurer)",
	BandTail:       "Worst-case containment (adverse finding plus regulatory cascade)",
}

// RangeOf returns the fixed GBP range for a band.
func RangeOf(b Band) Range { return bandRanges[b] }

// NameOf returns the display name for a band.
func NameOf(b Band) string { return bandNames[b] }

// Result is the outcome of band resolution.
type Result struct {
	Band  Band  `json:"band"`
	Range Range `json:"range"`
}

// Resolve selects the settlement band for a flag set. Precedence is fixed:
// two or more tail flags activate TAIL, else one or more validation flags
// activate VALIDATION, else BASE. No band is reachable any other way.
func Resolve(fs FlagSet) Result {
	switch {
	case fs.TailCount() >= tailFlagsRequired:
		return Result{Band: BandTail, Range: bandRanges[BandTail]}
	case fs.ValidationCount() >= validationFlagsRequired:
		return Result{Band: BandValidation, Range: bandRanges[BandValidation]}
	default:
		return Result{Band: BandBase, Range: bandRanges[BandBase]}
	}
}

// Escalation answers "what moves this up a band": the flags still needed to
// reach the next band from the current position.
type Escalation struct {
	NextBand    Band     `json:"next_band,omitempty"`
	FlagsNeeded int      `json:"flags_needed"`
	Missing     []string `json:"missing_flags,omitempty"`
	Message     string   `json:"message"`
}

// WhatMovesUp computes the escalation query for the current flag set. From
// BASE any single validation flag reaches VALIDATION; from VALIDATION the
// shortfall against two tail flags reaches TAIL; TAIL is the maximum band.
func WhatMovesUp(fs FlagSet) Escalation {
	switch Resolve(fs).Band {
	case BandTail:
		return Escalation{
			FlagsNeeded: 0,
			Message:     "Already at maximum band",
		}
	case BandValidation:
		needed := tailFlagsRequired - fs.TailCount()
		return Escalation{
			NextBand:    BandTail,
			FlagsNeeded: needed,
			Missing:     fs.missingTail(),
			Message: fmt.Sprintf("Need %d more tail flag(s) for %s (%s)",
				needed, BandTail, bandRanges[BandTail]),
		}
	default:
		return Escalation{
			NextBand:    BandValidation,
			FlagsNeeded: validationFlagsRequired,
			Missing:     fs.missingValidation(),
			Message: fmt.Sprintf("Need %d validation flag for %s (%s)",
				validationFlagsRequired, BandValidation, bandRanges[BandValidation]),
		}
	}
}

// Summary is the band output consumed by surfaces and the API.
type Summary struct {
	CurrentBand     Band       `json:"current_band"`
	CurrentBandName string     `json:"current_band_name"`
	CurrentRange    string     `json:"current_range"`
	Meaning         string     `json:"meaning"`
	ActiveFlags     []string   `json:"active_flags"`
	FlagCount       int        `json:"flag_count"`
	WhatMovesUp     Escalation `json:"what_moves_up"`
}

// Summarize resolves the band and assembles the full display summary.
func Summarize(fs FlagSet) Summary {
	res := Resolve(fs)
	return Summary{
		CurrentBand:     res.Band,
		CurrentBandName: bandNames[res.Band],
		CurrentRange:    res.Range.String(),
		Meaning:         bandMeanings[res.Band],
		ActiveFlags:     fs.Names(),
		FlagCount:       len(fs.Names()),
		WhatMovesUp:     WhatMovesUp(fs),
	}
}
