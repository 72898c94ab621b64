package notify

import (
	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/validation"
	"footprint-workers/internal/models"
)

// A figure of exactly zero counts as missing.
var resultsRequestSchema = validation.MustCompile(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["email", "results"],
  "properties": {
    "email": {"type": "string", "format": "email"},
    "phone": {"type": "string", "pattern": "^(\\+[1-9][0-9]{6,14})?$"},
    "results": {
      "type": "object",
      "required": ["carbonFootprint", "housing", "transportation", "food", "consumption"],
      "properties": {
        "carbonFootprint": {"type": "number", "not": {"const": 0}},
        "housing": {"type": "number", "not": {"const": 0}},
        "transportation": {"type": "number", "not": {"const": 0}},
        "food": {"type": "number", "not": {"const": 0}},
        "consumption": {"type": "number", "not": {"const": 0}}
      }
    }
  }
}`)

// ValidateResultsRequest rejects requests without a valid email or with any
// of the five result figures missing.
func ValidateResultsRequest(req *models.ResultsEmailRequest) error {
	if req == nil || req.Results == nil {
		return errors.NewEmailValidationFailedError("email and results are required")
	}

	result, err := resultsRequestSchema.ValidateObject(req)
	if err != nil {
		return errors.NewEmailValidationFailedError(err.Error())
	}
	if !result.Valid {
		return errors.NewEmailValidationFailedError(result.Error())
	}
	return nil
}
