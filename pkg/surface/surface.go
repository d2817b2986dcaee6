// Package surface defines output rendering for case analyses.
// Implementations handle different output targets: terminal, JSON, CSV,
// and the settlement letter.
package surface

import (
	"io"

	"github.com/levquant/levquant/pkg/analysis"
)

// Renderer produces formatted output from a case analysis.
type Renderer interface {
	// Render writes the formatted analysis to the writer.
	Render(w io.Writer, a *analysis.Analysis) error
}
