package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"footprint-workers/internal/emissions"
	"footprint-workers/internal/models"
)

// ResultsSubject is the subject line of every results email.
const ResultsSubject = "Your EcoViz Carbon Footprint Results"

type resultsView struct {
	Total          string
	Housing        string
	Transportation string
	Food           string
	Consumption    string
	Global         Comparison
	US             Comparison
	Equivalent     Equivalencies
	ResultsURL     string
}

func newResultsView(r *models.ResultsSummary, resultsURL string) resultsView {
	return resultsView{
		Total:          formatFixed(r.CarbonFootprint, 2),
		Housing:        formatFixed(r.Housing, 1),
		Transportation: formatFixed(r.Transportation, 1),
		Food:           formatFixed(r.Food, 1),
		Consumption:    formatFixed(r.Consumption, 1),
		Global:         compare(r.CarbonFootprint, emissions.GlobalAverageKgPerYear),
		US:             compare(r.CarbonFootprint, emissions.USAverageKgPerYear),
		Equivalent:     equivalencies(r.CarbonFootprint),
		ResultsURL:     resultsURL,
	}
}

var resultsHTML = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your EcoViz Carbon Footprint Results</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #e0f2f1; margin: 0; padding: 20px; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; }
    header { background: linear-gradient(to right, #4caf50, #2196f3); padding: 30px; text-align: center; }
    h1 { color: #ffffff; margin: 0; }
    main { padding: 30px; }
    h2, h3 { color: #2e7d32; }
    .total-footprint { text-align: center; font-size: 28px; font-weight: bold; color: #4caf50; margin: 30px 0; }
    .breakdown ul { list-style-type: none; padding: 0; }
    .breakdown li { margin-bottom: 15px; padding: 10px; border-radius: 8px; background-color: #f1f8e9; }
    .comparison { margin-bottom: 30px; padding: 20px; background-color: #e8f5e9; border-radius: 8px; }
    .button { display: inline-block; background-color: #4caf50; color: #ffffff; padding: 12px 24px; text-decoration: none; border-radius: 25px; font-weight: bold; }
    footer { background-color: #f5f5f5; padding: 20px; text-align: center; font-size: 12px; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <header><h1>EcoViz</h1></header>
    <main>
      <h2>Your Carbon Footprint Results</h2>
      <div class="total-footprint">{{.Total}} kg CO2e / year</div>
      <div class="breakdown">
        <h3>Breakdown</h3>
        <ul>
          <li>🏠 Housing: {{.Housing}} kg CO2e</li>
          <li>🚗 Transportation: {{.Transportation}} kg CO2e</li>
          <li>🍽️ Food: {{.Food}} kg CO2e</li>
          <li>🛍️ Consumption: {{.Consumption}} kg CO2e</li>
        </ul>
      </div>
      <div class="comparison">
        <h3>Comparison with Averages</h3>
        <p>Your carbon footprint is {{.Global.Percent}}% {{.Global.Direction}} than the global average and {{.US.Percent}}% {{.US.Direction}} than the US average.</p>
        <p>That is roughly the same as driving {{.Equivalent.MilesDriven}} miles in an average car, or the carbon {{.Equivalent.TreeSeedlings}} tree seedlings absorb over ten years.</p>
      </div>
      <div class="next-steps">
        <h3>Next Steps</h3>
        <p>Visit our website to view detailed AI recommendations on how to reduce your carbon footprint.</p>
        <p style="text-align: center;"><a href="{{.ResultsURL}}" class="button">View Full Results</a></p>
      </div>
    </main>
    <footer><p>This email was sent by EcoViz. Please do not reply to this message.</p></footer>
  </div>
</body>
</html>`))

// RenderResultsEmail builds the results email for one recipient.
func RenderResultsEmail(from, to, resultsURL string, r *models.ResultsSummary) (*models.EmailMessage, error) {
	view := newResultsView(r, resultsURL)

	var html bytes.Buffer
	if err := resultsHTML.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("render results email: %w", err)
	}

	return &models.EmailMessage{
		To:       to,
		From:     from,
		Subject:  ResultsSubject,
		Body:     renderText(view),
		HTMLBody: html.String(),
	}, nil
}

func renderText(v resultsView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your Carbon Footprint Results: %s kg CO2e / year\n\n", v.Total)
	fmt.Fprintf(&b, "Housing: %s kg CO2e\n", v.Housing)
	fmt.Fprintf(&b, "Transportation: %s kg CO2e\n", v.Transportation)
	fmt.Fprintf(&b, "Food: %s kg CO2e\n", v.Food)
	fmt.Fprintf(&b, "Consumption: %s kg CO2e\n\n", v.Consumption)
	fmt.Fprintf(&b, "Your carbon footprint is %s%% %s than the global average and %s%% %s than the US average.\n\n",
		v.Global.Percent, v.Global.Direction, v.US.Percent, v.US.Direction)
	fmt.Fprintf(&b, "View full results: %s\n", v.ResultsURL)
	return b.String()
}

// SMSSummary is the short text sent alongside the email.
func SMSSummary(r *models.ResultsSummary, resultsURL string) string {
	us := compare(r.CarbonFootprint, emissions.USAverageKgPerYear)
	return fmt.Sprintf("EcoViz: your footprint is %s kg CO2e/year (%s%% %s than the US average). Details: %s",
		formatFixed(r.CarbonFootprint, 0), us.Percent, us.Direction, resultsURL)
}
