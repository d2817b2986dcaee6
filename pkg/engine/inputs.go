package engine

// EvidenceInputs holds the three evidence strength scalars for a case.
// Construct via NewEvidenceInputs; values are validated once there and the
// struct is immutable afterwards.
type EvidenceInputs struct {
	claimValidity       float64
	proceduralAdvantage float64
	costAsymmetry       float64
}

// NewEvidenceInputs validates and builds an EvidenceInputs value.
// Each scalar must lie in the closed interval [0.0, 1.0]; anything else is a
// *DomainError.
func NewEvidenceInputs(claimValidity, proceduralAdvantage, costAsymmetry float64) (EvidenceInputs, error) {
	for _, check := range []struct {
		field string
		value float64
	}{
		{"claim_validity", claimValidity},
		{"procedural_advantage", proceduralAdvantage},
		{"cost_asymmetry", costAsymmetry},
	} {
		// Written as a negated inclusion test so NaN fails too.
		if !(check.value >= 0.0 && check.value <= 1.0) {
			return EvidenceInputs{}, &DomainError{Field: check.field, Value: check.value}
		}
	}
	return EvidenceInputs{
		claimValidity:       claimValidity,
		proceduralAdvantage: proceduralAdvantage,
		costAsymmetry:       costAsymmetry,
	}, nil
}

// ClaimValidity returns the claim-validity strength scalar.
func (in EvidenceInputs) ClaimValidity() float64 { return in.claimValidity }

// ProceduralAdvantage returns the procedural-advantage strength scalar.
func (in EvidenceInputs) ProceduralAdvantage() float64 { return in.proceduralAdvantage }

// CostAsymmetry returns the cost-asymmetry strength scalar.
func (in EvidenceInputs) CostAsymmetry() float64 { return in.costAsymmetry }
