package matchsrv

import (
	"fmt"
	"strings"
)

// similarityFloor is the cutoff above which a non-exact skill pair still
// counts as matched. Tunable, not derived.
const similarityFloor = 0.7

// DetermineJobCategory classifies a posting by its title keywords; untyped
// titles fall back to "general", which carries no weight table.
func (e *Engine) DetermineJobCategory(jobTitle string) string {
	title := strings.ToLower(jobTitle)
	for _, ck := range e.tables.CategoryKeywords {
		for _, kw := range ck.Keywords {
			if strings.Contains(title, kw) {
				return ck.Category
			}
		}
	}
	return "general"
}

// SkillScore is the weighted share of job requirements the candidate covers,
// as a percentage. A requirement counts fully on an exact match and at
// weight x similarity when a candidate skill clears the similarity floor.
// Either list empty scores 0.
func (e *Engine) SkillScore(candidateSkills, requirements []string, jobTitle string) float64 {
	if len(candidateSkills) == 0 || len(requirements) == 0 {
		return 0
	}

	skills := lowerAll(candidateSkills)
	weights := e.tables.SkillWeights[e.DetermineJobCategory(jobTitle)]

	var totalWeight, matchedWeight float64
	for _, req := range lowerAll(requirements) {
		weight := 1.0
		if w, ok := weights[req]; ok {
			weight = w
		}
		totalWeight += weight

		if containsString(skills, req) {
			matchedWeight += weight
		} else if sim := e.skillSimilarity(req, skills); sim > similarityFloor {
			matchedWeight += weight * sim
		}
	}

	if totalWeight == 0 {
		return 0
	}

	score := matchedWeight / totalWeight * 100
	if score > 100 {
		score = 100
	}
	return score
}

// skillSimilarity returns the best similarity between the target skill and
// any candidate skill: 1.0 exact, 0.8 substring either direction, 0.9 for a
// canonical/variant synonym pair, else 0.
func (e *Engine) skillSimilarity(target string, candidateSkills []string) float64 {
	target = strings.ToLower(target)

	for _, skill := range candidateSkills {
		skill = strings.ToLower(skill)

		if target == skill {
			return 1.0
		}
		if strings.Contains(skill, target) || strings.Contains(target, skill) {
			return 0.8
		}

		for canonical, variants := range e.tables.Synonyms {
			if (target == canonical && containsString(variants, skill)) ||
				(containsString(variants, target) && skill == canonical) {
				return 0.9
			}
		}
	}

	return 0
}

// MatchedSkills lists the requirements the candidate covers. Near matches
// are annotated with the candidate skill that satisfied them.
func (e *Engine) MatchedSkills(candidateSkills, requirements []string) []string {
	if len(candidateSkills) == 0 || len(requirements) == 0 {
		return nil
	}

	skills := lowerAll(candidateSkills)

	var matched []string
	for _, req := range lowerAll(requirements) {
		if containsString(skills, req) {
			matched = append(matched, req)
			continue
		}
		for _, skill := range skills {
			if e.skillSimilarity(req, []string{skill}) > similarityFloor {
				matched = append(matched, fmt.Sprintf("%s (similar to %s)", req, skill))
				break
			}
		}
	}
	return matched
}

// MissingSkills lists the requirements with no exact and no near candidate
// match. With no candidate skills at all, every requirement is missing.
func (e *Engine) MissingSkills(candidateSkills, requirements []string) []string {
	if len(requirements) == 0 {
		return nil
	}
	if len(candidateSkills) == 0 {
		return lowerAll(requirements)
	}

	skills := lowerAll(candidateSkills)

	var missing []string
	for _, req := range lowerAll(requirements) {
		if containsString(skills, req) {
			continue
		}
		if e.skillSimilarity(req, skills) > similarityFloor {
			continue
		}
		missing = append(missing, req)
	}
	return missing
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
