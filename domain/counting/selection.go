package counting

import "fmt"

// TeamSelectionCase is one admissible split of a team into experienced and
// novice members.
type TeamSelectionCase struct {
	Experienced int
	Novices     int
	Ways        Count
}

// Formula renders the case as C(E,e) × C(N,v).
func (c TeamSelectionCase) Formula(totalExperienced, totalNovices int) string {
	return fmt.Sprintf("C(%d,%d) × C(%d,%d)", totalExperienced, c.Experienced, totalNovices, c.Novices)
}

// TeamSelectionResult lists every admissible case and their sum.
type TeamSelectionResult struct {
	Cases []TeamSelectionCase
	Total Count
}

// TeamSelections counts the teams of size members drawn from experienced
// and novices pools that contain at least minExperienced experienced and
// minNovices novice members, by summing C(E,e)·C(N,size-e) over every
// admissible e.
func TeamSelections(experienced, novices, size, minExperienced, minNovices int) TeamSelectionResult {
	if experienced < 0 || novices < 0 || size < 0 || minExperienced < 0 || minNovices < 0 {
		return TeamSelectionResult{Total: NotDefined()}
	}

	res := TeamSelectionResult{Total: Of(0)}
	if size > experienced+novices {
		return res
	}
	lo, hi := splitRange(experienced, novices, size)
	for e := max(lo, minExperienced); e <= min(hi, size-minNovices); e++ {
		v := size - e
		ways := Combinations(experienced, e).Mul(Combinations(novices, v))
		res.Cases = append(res.Cases, TeamSelectionCase{Experienced: e, Novices: v, Ways: ways})
		res.Total = res.Total.Add(ways)
	}
	return res
}

// TeamSelectionsByComplement counts the same teams as TeamSelections by
// inclusion-exclusion: all teams, minus those with too few experienced
// members, minus those with too few novices, plus those with both.
func TeamSelectionsByComplement(experienced, novices, size, minExperienced, minNovices int) Count {
	if experienced < 0 || novices < 0 || size < 0 || minExperienced < 0 || minNovices < 0 {
		return NotDefined()
	}
	if size > experienced+novices {
		return Of(0)
	}

	all := Combinations(experienced+novices, size)
	tooFewExp := Of(0)
	tooFewNov := Of(0)
	both := Of(0)
	lo, hi := splitRange(experienced, novices, size)
	for e := lo; e <= hi; e++ {
		v := size - e
		ways := Combinations(experienced, e).Mul(Combinations(novices, v))
		if e < minExperienced {
			tooFewExp = tooFewExp.Add(ways)
		}
		if v < minNovices {
			tooFewNov = tooFewNov.Add(ways)
		}
		if e < minExperienced && v < minNovices {
			both = both.Add(ways)
		}
	}

	excluded := tooFewExp.Add(tooFewNov)
	if !all.IsExact() || !excluded.IsExact() || !both.IsExact() {
		return TooLarge()
	}
	return Of(all.Value - excluded.Value + both.Value)
}

// splitRange bounds the experienced count e of a team: at most size-novices
// seats can go unfilled by novices, and e never exceeds the pool or the team.
func splitRange(experienced, novices, size int) (lo, hi int) {
	return max(0, size-novices), min(experienced, size)
}
