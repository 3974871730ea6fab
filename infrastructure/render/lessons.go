package render

import (
	"fmt"

	"probtutor/domain/probability"
)

// BayesChart compares priors with posteriors for each hypothesis.
func BayesChart(res probability.BayesResult) Chart {
	labels := make([]string, len(res.Priors))
	for i := range labels {
		labels[i] = fmt.Sprintf("H%d", i+1)
	}
	return Chart{
		Title:  "Prior vs posterior",
		Labels: labels,
		Series: []Series{
			{Name: "Prior P(H)", Values: res.Priors},
			{Name: "Posterior P(H|E)", Values: res.Posteriors},
		},
		Max:     1,
		Percent: true,
	}
}

// ContingencyChart shows P(Bj | Ai) for every row of the table. Rows with
// no observations are drawn as zeros.
func ContingencyChart(t *probability.ContingencyTable) (Chart, error) {
	p, ok := t.Probabilities()
	if !ok {
		return Chart{}, ErrEmptyChart
	}

	labels := make([]string, len(t.ColTotals))
	for j := range labels {
		labels[j] = fmt.Sprintf("B%d", j+1)
	}

	series := make([]Series, len(p.ColGivenRow))
	for i, row := range p.ColGivenRow {
		if row == nil {
			row = make([]float64, len(labels))
		}
		series[i] = Series{Name: fmt.Sprintf("P(B|A%d)", i+1), Values: row}
	}

	return Chart{
		Title:   "Conditional distribution by row",
		Labels:  labels,
		Series:  series,
		Max:     1,
		Percent: true,
	}, nil
}

// DiceChart shows observed face frequencies against the fair 1/6.
func DiceChart(tally probability.DiceTally) (Chart, error) {
	total := tally.Total()
	if total == 0 {
		return Chart{}, ErrEmptyChart
	}

	labels := make([]string, len(tally))
	observed := make([]float64, len(tally))
	expected := make([]float64, len(tally))
	for i, n := range tally {
		labels[i] = fmt.Sprint(i + 1)
		observed[i] = float64(n) / float64(total)
		expected[i] = 1.0 / float64(len(tally))
	}

	return Chart{
		Title:  fmt.Sprintf("Die faces after %d rolls", total),
		Labels: labels,
		Series: []Series{
			{Name: "Observed", Values: observed},
			{Name: "Expected", Values: expected},
		},
		Percent: true,
	}, nil
}

// DependencyChart compares simulated and exact probabilities of a
// dependency run.
func DependencyChart(stats probability.DependencyStats) (Chart, error) {
	pA, pB, pAB, err := probability.ExpectedDependency(stats.Kind)
	if err != nil {
		return Chart{}, err
	}
	return Chart{
		Title:  fmt.Sprintf("%s events, %d trials", stats.Kind, stats.Trials),
		Labels: []string{"P(A)", "P(B)", "P(A∩B)"},
		Series: []Series{
			{Name: "Simulated", Values: []float64{stats.PA(), stats.PB(), stats.PAB()}},
			{Name: "Exact", Values: []float64{pA, pB, pAB}},
		},
		Max:     1,
		Percent: true,
	}, nil
}
