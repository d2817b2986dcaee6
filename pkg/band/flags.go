package band

import (
	"fmt"
	"sort"
)

// ValidationFlag is an external-validation evidentiary indicator: an event a
// third party (court, regulator, insurer, police) has put on record.
type ValidationFlag string

const (
	FlagJudicialCommentOnRecord ValidationFlag = "judicial_comment_on_record"
	FlagSRAInvestigationOpen    ValidationFlag = "sra_investigation_open"
	FlagInsurerReservesRights   ValidationFlag = "insurer_reserves_rights"
	FlagPoliceMetadataValidated ValidationFlag = "police_metadata_validated"
)

// TailFlag is a worst-case evidentiary indicator: an adverse finding or
// regulatory cascade already in motion.
type TailFlag string

const (
	FlagAdverseJudicialLanguage         TailFlag = "adverse_judicial_language"
	FlagSRAFormalAction                 TailFlag = "sra_formal_action"
	FlagInsuranceCoverageStress         TailFlag = "insurance_coverage_stress"
	FlagCriminalInvestigationEscalation TailFlag = "criminal_investigation_escalation"
	FlagShadowDirectorProven            TailFlag = "shadow_director_proven"
)

var validationVocabulary = []ValidationFlag{
	FlagJudicialCommentOnRecord,
	FlagSRAInvestigationOpen,
	FlagInsurerReservesRights,
	FlagPoliceMetadataValidated,
}

var tailVocabulary = []TailFlag{
	FlagAdverseJudicialLanguage,
	FlagSRAFormalAction,
	FlagInsuranceCoverageStress,
	FlagCriminalInvestigationEscalation,
	FlagShadowDirectorProven,
}

// UnknownFlagError reports an identifier outside both closed vocabularies.
// A mistyped flag must fail construction rather than silently count as
// absent and miscalculate the band.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag identifier: %q", e.Name)
}

// FlagSet is a validated set of active flags drawn from the two closed
// vocabularies. Construct via NewFlagSet; matching is case-sensitive and
// exact.
type FlagSet struct {
	validation map[ValidationFlag]bool
	tail       map[TailFlag]bool
}

// NewFlagSet builds a FlagSet from raw identifiers. Duplicates collapse;
// any identifier outside the vocabularies is an *UnknownFlagError.
func NewFlagSet(names ...string) (FlagSet, error) {
	fs := FlagSet{
		validation: make(map[ValidationFlag]bool),
		tail:       make(map[TailFlag]bool),
	}
	for _, name := range names {
		switch {
		case isValidationFlag(name):
			fs.validation[ValidationFlag(name)] = true
		case isTailFlag(name):
			fs.tail[TailFlag(name)] = true
		default:
			return FlagSet{}, &UnknownFlagError{Name: name}
		}
	}
	return fs, nil
}

func isValidationFlag(name string) bool {
	for _, f := range validationVocabulary {
		if string(f) == name {
			return true
		}
	}
	return false
}

func isTailFlag(name string) bool {
	for _, f := range tailVocabulary {
		if string(f) == name {
			return true
		}
	}
	return false
}

// ValidationCount returns the number of active validation-vocabulary flags.
func (fs FlagSet) ValidationCount() int { return len(fs.validation) }

// TailCount returns the number of active tail-vocabulary flags.
func (fs FlagSet) TailCount() int { return len(fs.tail) }

// Names returns all active flag identifiers, sorted.
func (fs FlagSet) Names() []string {
	names := make([]string, 0, len(fs.validation)+len(fs.tail))
	for f := range fs.validation {
		names = append(names, string(f))
	}
	for f := range fs.tail {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ActiveTailFlags returns the active tail flags in vocabulary order.
func (fs FlagSet) ActiveTailFlags() []TailFlag {
	var active []TailFlag
	for _, f := range tailVocabulary {
		if fs.tail[f] {
			active = append(active, f)
		}
	}
	return active
}

// missingValidation returns the validation flags not currently active, sorted.
func (fs FlagSet) missingValidation() []string {
	var missing []string
	for _, f := range validationVocabulary {
		if !fs.validation[f] {
			missing = append(missing, string(f))
		}
	}
	sort.Strings(missing)
	return missing
}

// missingTail returns the tail flags not currently active, sorted.
func (fs FlagSet) missingTail() []string {
	var missing []string
	for _, f := range tailVocabulary {
		if !fs.tail[f] {
			missing = append(missing, string(f))
		}
	}
	sort.Strings(missing)
	return missing
}

// ValidationVocabulary returns the closed validation-flag vocabulary.
func ValidationVocabulary() []ValidationFlag {
	out := make([]ValidationFlag, len(validationVocabulary))
	copy(out, validationVocabulary)
	return out
}

// TailVocabulary returns the closed tail-flag vocabulary.
func TailVocabulary() []TailFlag {
	out := make([]TailFlag, len(tailVocabulary))
	copy(out, tailVocabulary)
	return out
}
