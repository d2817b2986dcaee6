package surface

import (
	"encoding/json"
	"io"

	"github.com/levquant/levquant/pkg/analysis"
)

// JSONRenderer marshals the analysis to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, a *analysis.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}
