package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/eval"
	"github.com/alexanderramin/rendezvous/internal/scenario"
)

// FormatState renders a single DateState on one line.
func FormatState(s domain.DateState) string {
	mood := MoodStyle(s.PartnerMood).Render(fmt.Sprintf("mood %d/10", s.PartnerMood))
	return fmt.Sprintf("%02d:00  %-12s %s  budget %s  %s",
		s.Time,
		string(s.Location),
		mood,
		Bold(fmt.Sprintf("¤%d", s.Budget)),
		WeatherBadge(s.Weather),
	)
}

// FormatSimulation renders one plan run: initial and final state, the
// score breakdown, and the outcome indicator.
func FormatSimulation(plan string, initial, final domain.DateState) string {
	score := eval.EvaluateDatePlan(initial, final)
	outcome := eval.Classify(final)

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("plan: %s", plan)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("start "), FormatState(initial)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("end   "), FormatState(final)))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"MOOD", "BUDGET EFF", "TIME EFF", "TOTAL"},
		[][]string{{
			fmt.Sprintf("%d", score.MoodScore),
			fmt.Sprintf("%d", score.BudgetEfficiency),
			fmt.Sprintf("%d", score.TimeEfficiency),
			Bold(fmt.Sprintf("%d", score.Total)),
		}},
	))
	b.WriteString("\n")
	b.WriteString(OutcomeIndicator(outcome))
	b.WriteString("\n")
	return b.String()
}

// FormatBatch renders a batch of scenario results as a table with the
// aggregate success percentage underneath.
func FormatBatch(plan string, results []scenario.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		verdict := StyleRed.Render("fail")
		if r.Successful {
			verdict = StyleGreen.Render("pass")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02d:00", r.Initial.Time),
			fmt.Sprintf("¤%d", r.Initial.Budget),
			fmt.Sprintf("%d", r.Initial.PartnerMood),
			WeatherBadge(r.Initial.Weather),
			string(r.Final.Location),
			fmt.Sprintf("%d", r.Final.PartnerMood),
			fmt.Sprintf("¤%d", r.Final.Budget),
			verdict,
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("batch: %s", plan)))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"START", "BUDGET", "MOOD", "WEATHER", "ENDS AT", "MOOD'", "BUDGET'", "RESULT"},
		rows,
	))
	b.WriteString("\n")
	pct := scenario.SuccessPercentage(results)
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("success rate"), Bold(fmt.Sprintf("%d%%", pct))))
	return b.String()
}

// FormatHistory renders past recorded batch runs.
func FormatHistory(runs []*domain.BatchRun) string {
	if len(runs) == 0 {
		return Dim("no recorded runs") + "\n"
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Plan,
			fmt.Sprintf("%d", r.Scenarios),
			fmt.Sprintf("%d", r.Successes),
			fmt.Sprintf("%d%%", r.SuccessPct),
			Dim(shortID(r.ID)),
		})
	}

	var b strings.Builder
	b.WriteString(Header("recorded runs"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"WHEN", "PLAN", "SCENARIOS", "PASSED", "RATE", "ID"},
		rows,
	))
	return b.String()
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatPlans renders the plan registry table.
func FormatPlans(names, descriptions []string) string {
	rows := make([][]string, 0, len(names))
	for i, n := range names {
		rows = append(rows, []string{Bold(n), descriptions[i]})
	}
	var b strings.Builder
	b.WriteString(Header("plans"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"NAME", "WHAT IT DOES"}, rows))
	return b.String()
}
