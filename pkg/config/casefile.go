package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CaseFile is the YAML description of a single dispute case: the evidence
// scalars, the active evidentiary flags, and the monetary assumptions the
// estimators consume. The case file carries raw values only; range checks
// and flag-vocabulary checks happen at engine/band construction.
type CaseFile struct {
	Name      string          `yaml:"name"`
	Reference string          `yaml:"reference"`
	Inputs    EvidenceValues  `yaml:"inputs"`
	Flags     []string        `yaml:"flags"`
	Monetary  MonetaryValues  `yaml:"monetary"`
	GDPR      GDPRValues      `yaml:"gdpr"`
	Insurance InsuranceValues `yaml:"insurance"`
}

// EvidenceValues are the three raw evidence scalars.
type EvidenceValues struct {
	ClaimValidity       float64 `yaml:"claim_validity"`
	ProceduralAdvantage float64 `yaml:"procedural_advantage"`
	CostAsymmetry       float64 `yaml:"cost_asymmetry"`
}

// MonetaryValues are the GBP amounts the dispute is anchored on.
type MonetaryValues struct {
	PrincipalDebt decimal.Decimal `yaml:"principal_debt"`
	IncurredCosts decimal.Decimal `yaml:"incurred_costs"`
}

// GDPRValues feed the data-protection exposure estimator.
type GDPRValues struct {
	DataSubjects   int             `yaml:"data_subjects"`
	AnnualTurnover decimal.Decimal `yaml:"annual_turnover"`
	DistressLevel  string          `yaml:"distress_level"` // low, moderate, high, severe
}

// InsuranceValues feed the insurance-reserve estimator.
type InsuranceValues struct {
	CaseReserve   decimal.Decimal `yaml:"case_reserve"`
	CoverageLimit decimal.Decimal `yaml:"coverage_limit"`
	IBNRPercent   float64         `yaml:"ibnr_percent"`
}

// LoadCaseFile reads and parses a case file. Unlike Load, a missing case
// file is an error: there are no default cases.
func LoadCaseFile(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	if cf.Name == "" {
		return nil, fmt.Errorf("case file %s: missing name", path)
	}

	return &cf, nil
}
