package selector

import "jobprep/interview/internal/models"

// content is the normalized view of a question used for duplicate checks.
type content struct {
	question    string
	idealAnswer string
	keyPoints   []string
}

func normalizeCandidate(c models.Candidate) content {
	return normalizeContent(c.Question, c.IdealAnswer, c.KeyPoints)
}

func normalizeQuestion(q models.Question) content {
	return normalizeContent(q.Question, q.IdealAnswer, q.KeyPoints)
}

func normalizeContent(question, idealAnswer string, keyPoints []string) content {
	normalized := content{
		question:    Normalize(question),
		idealAnswer: Normalize(idealAnswer),
		keyPoints:   make([]string, 0, len(keyPoints)),
	}
	for _, kp := range keyPoints {
		if n := Normalize(kp); n != "" {
			normalized.keyPoints = append(normalized.keyPoints, n)
		}
	}
	return normalized
}

// isDuplicate applies the containment heuristic: two questions collide
// when their question texts contain each other in either direction, or
// when their ideal answers do and at least one key point pair does. The
// check is symmetric in a and b.
func isDuplicate(a, b content) bool {
	if containsEither(a.question, b.question) {
		return true
	}
	if !containsEither(a.idealAnswer, b.idealAnswer) {
		return false
	}
	for _, ka := range a.keyPoints {
		for _, kb := range b.keyPoints {
			if containsEither(ka, kb) {
				return true
			}
		}
	}
	return false
}

// duplicateOfAny reports whether the candidate collides with anything in
// the given set.
func duplicateOfAny(c content, existing []content) bool {
	for _, e := range existing {
		if isDuplicate(c, e) {
			return true
		}
	}
	return false
}
