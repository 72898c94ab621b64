package notify

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EPA greenhouse gas equivalency factors.
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192
	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling over 10 years.
	EPATreeSeedlingFactor = 60.0
)

var printer = message.NewPrinter(language.English)

// formatFixed renders v with a fixed number of decimals and thousand
// separators on the integer part.
func formatFixed(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	out := printer.Sprintf("%d", n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		out = "-0"
	}
	if hasFrac {
		out += "." + frac
	}
	return out
}

// Comparison describes a footprint relative to a reference average.
type Comparison struct {
	Percent   string
	Direction string
}

// compare formats (total-avg)/avg as an absolute percentage with a
// "higher"/"lower" direction.
func compare(total, avg float64) Comparison {
	pct := (total - avg) / avg * 100
	direction := "lower"
	if pct > 0 {
		direction = "higher"
	}
	return Comparison{
		Percent:   formatFixed(math.Abs(pct), 1),
		Direction: direction,
	}
}

// Equivalencies expresses a footprint in everyday terms.
type Equivalencies struct {
	MilesDriven   string
	TreeSeedlings string
}

func equivalencies(totalKg float64) Equivalencies {
	return Equivalencies{
		MilesDriven:   formatFixed(math.Round(totalKg/EPAMilesDrivenFactor), 0),
		TreeSeedlings: formatFixed(math.Round(totalKg/EPATreeSeedlingFactor), 0),
	}
}
