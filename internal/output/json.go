package output

import (
	"encoding/json"

	"github.com/hartawan/finsim/internal/domain"
)

// JSONFormatter renders the complete simulation result as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Name() string { return "json" }

// Format renders the result.
func (jf *JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
