// internal/workers/footprint/calculate-footprint/models.go
package calculatefootprint

import "footprint-workers/internal/models"

type Input struct {
	UserID    string               `json:"userId"`
	UserInput *models.RawUserInput `json:"userInput"`
}

// Output carries the full envelope plus the figures the results email
// worker reads from the process variables.
type Output struct {
	Footprint *models.ResultEnvelope `json:"footprint"`
	Results   models.ResultsSummary  `json:"results"`
}
