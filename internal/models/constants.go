package models

// Fixed enumerations for interview pools. Requests with values outside
// these sets are rejected before the selector runs.
var (
	ValidRoles = map[string]bool{
		"Software Developer": true,
		"QA Engineer":        true,
		"Business Analyst":   true,
		"Project Manager":    true,
	}

	ValidLevels = map[string]bool{
		"Intern":  true,
		"Junior":  true,
		"Senior":  true,
		"Lead":    true,
		"Manager": true,
	}

	ValidCategories = map[string]bool{
		"Technical":       true,
		"Behavioral":      true,
		"System Design":   true,
		"Problem Solving": true,
	}
)

// RoleTopics lists the focus topics the generation prompt can draw from,
// per role. Unknown roles fall back to GenericTopics.
var RoleTopics = map[string][]string{
	"Software Developer": {
		"data structures", "algorithms", "API design", "databases",
		"testing strategies", "debugging", "code review", "version control",
		"concurrency", "performance optimization", "design patterns",
	},
	"QA Engineer": {
		"test planning", "test automation", "regression testing",
		"bug triage", "exploratory testing", "CI pipelines",
		"performance testing", "test data management", "quality metrics",
	},
	"Business Analyst": {
		"requirements gathering", "stakeholder management", "process modeling",
		"data analysis", "user stories", "gap analysis", "acceptance criteria",
		"documentation", "prioritization",
	},
	"Project Manager": {
		"project planning", "risk management", "agile ceremonies",
		"resource allocation", "stakeholder communication", "budgeting",
		"team conflict", "delivery tracking", "scope management",
	},
}

var GenericTopics = []string{
	"problem solving", "communication", "teamwork", "time management",
	"handling failure", "learning new skills", "prioritization",
	"working under pressure",
}

// TopicsForRole returns the focus-topic list for a role, falling back to
// the generic list for unrecognized roles.
func TopicsForRole(role string) []string {
	if topics, ok := RoleTopics[role]; ok {
		return topics
	}
	return GenericTopics
}
