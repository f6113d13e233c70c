package compare

import (
	"encoding/json"

	"github.com/hartawan/finsim/internal/domain"
)

// JSONFormatter renders an impact analysis as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for the impact analysis.
func (jf *JSONFormatter) Format(ia *domain.ImpactAnalysis) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(ia, "", "  ")
	} else {
		data, err = json.Marshal(ia)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
