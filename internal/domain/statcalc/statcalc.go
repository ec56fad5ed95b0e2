// Package statcalc holds the derived-statistic calculators. Every calculator
// is total over its input range and never returns an error.
package statcalc

// ProficiencyBonus is flat, there is no leveling.
const ProficiencyBonus = 2

// AbilityScoreMod maps a raw ability score to its modifier. Integer division
// truncates toward zero, so 1 maps to -5 and 25 maps to 7.
func AbilityScoreMod(score int) int {
	return score/2 - 5
}

// SavingThrow is the ability modifier plus the proficiency bonus when the
// character is proficient in that saving throw.
func SavingThrow(score int, proficient bool) int {
	mod := AbilityScoreMod(score)
	if proficient {
		return mod + ProficiencyBonus
	}

	return mod
}

// SkillBonus mirrors SavingThrow for skill checks against the governing
// ability score.
func SkillBonus(score int, proficient bool) int {
	return SavingThrow(score, proficient)
}
