// Package extraction merges lexicon-based keyword spotting with externally
// supplied recognizer entities into normalized skill sets, and provides the
// structural checks (sections, contact info) shared by the gap analyzer and
// the ATS scorer.
package extraction

import (
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/types"
)

// ExtractSkills returns the normalized union of labeled-entity skills and
// lexicon pattern matches found in text.
//
// entities may be nil when no recognizer is available; extraction then
// degrades to lexicon-only matching. Absent input yields an empty set, never
// an error.
func ExtractSkills(lex *lexicon.Lexicon, text string, entities *types.LabeledEntities) types.SkillSet {
	skills := types.NewSkillSet()

	if entities != nil {
		for _, skill := range entities.Skills {
			skills.Add(skill)
		}
	}

	for _, match := range lex.FindAll(text) {
		skills.Add(match)
	}

	return skills
}
