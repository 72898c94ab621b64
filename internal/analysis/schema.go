package analysis

import (
	"encoding/json"
	"errors"
	"fmt"

	"footprint-workers/internal/common/validation"
	"footprint-workers/internal/models"
)

// ErrInvalidResponse marks generated text that is not a valid analysis.
var ErrInvalidResponse = errors.New("invalid analysis response")

// responseSchema describes a valid analysis document.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "recommendations", "disclaimer"],
  "properties": {
    "summary": {
      "type": "object",
      "required": ["totalEmissions", "comparisonToAverages", "topContributors"],
      "properties": {
        "totalEmissions": {"type": "number"},
        "comparisonToAverages": {
          "type": "object",
          "required": ["global", "us"],
          "properties": {
            "global": {"type": "number"},
            "us": {"type": "number"}
          }
        },
        "topContributors": {
          "type": "array",
          "minItems": 1,
          "maxItems": 4,
          "items": {
            "type": "object",
            "required": ["category", "percentage", "emissions"],
            "properties": {
              "category": {"enum": ["housing", "transportation", "food", "consumption"]},
              "percentage": {"type": "number"},
              "emissions": {"type": "number"}
            }
          }
        }
      }
    },
    "recommendations": {
      "type": "array",
      "minItems": 2,
      "items": {
        "type": "object",
        "required": ["title", "description", "dataReference", "potentialImpact", "goal", "priority", "category"],
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"},
          "dataReference": {"type": "string"},
          "potentialImpact": {
            "type": "object",
            "required": ["co2Reduction", "unit"],
            "properties": {
              "co2Reduction": {"type": "number"},
              "unit": {"const": "kg/year"}
            }
          },
          "goal": {"type": "string"},
          "priority": {"enum": ["high", "medium", "low"]},
          "category": {"enum": ["housing", "transportation", "food", "consumption"]}
        }
      }
    },
    "disclaimer": {"type": "string"}
  }
}`

var compiledSchema = validation.MustCompile(responseSchema)

// ParseResponse validates sanitized text against the response schema and
// decodes it.
func ParseResponse(text string) (*models.AIAnalysisResponse, error) {
	result, err := compiledSchema.ValidateJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: parse analysis: %v", ErrInvalidResponse, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: analysis validation failed: %s", ErrInvalidResponse, result.Error())
	}

	var resp models.AIAnalysisResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("%w: decode analysis: %v", ErrInvalidResponse, err)
	}
	return &resp, nil
}
