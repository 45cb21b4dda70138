package driver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agenthands/resumegraph/internal/core/model"
)

const (
	MergeCandidateQuery = `
		MERGE (c:Candidate {content_hash: $content_hash})
		ON CREATE SET c.created_at = $created_at
		SET c.name = $name,
			c.content = $content
		RETURN c.content_hash AS content_hash
	`

	FindCandidateQuery = `
		MATCH (c:Candidate {content_hash: $content_hash})
		RETURN c.content_hash AS content_hash, c.name AS name
	`

	GetCandidateQuery = `
		MATCH (c:Candidate {content_hash: $content_hash})
		OPTIONAL MATCH (c)-[r]->(a)
		RETURN c.content_hash AS content_hash, c.name AS name, c.content AS content,
			c.created_at AS created_at, type(r) AS relationship, a.name AS item
	`

	// MatchAllSkillsQuery expects $skills to hold no duplicates.
	MatchAllSkillsQuery = `
		MATCH (c:Candidate)-[:HAS_SKILL]->(s:Skill)
		WHERE s.name IN $skills
		WITH c, count(DISTINCT s.name) AS matched
		WHERE matched = size($skills)
		RETURN DISTINCT c.content_hash AS content_hash, c.name AS name, c.content AS content
		ORDER BY name, content_hash
	`

	ListCandidatesQuery = `
		MATCH (c:Candidate)
		RETURN c.content_hash AS content_hash, c.name AS name
		ORDER BY name, content_hash
	`

	StatsQuery = `
		MATCH (n)
		WITH count(n) AS nodes
		OPTIONAL MATCH ()-[r]->()
		RETURN nodes, count(r) AS edges
	`

	ClearGraphQuery = `MATCH (n) DETACH DELETE n`
)

var identifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// MergeAttributesQuery links a candidate to every name in $names under one label and
// relationship type. Labels cannot be parameters in Cypher, so both are checked here.
func MergeAttributesQuery(label, relationship string) (string, error) {
	if !identifier.MatchString(label) {
		return "", fmt.Errorf("invalid node label %q", label)
	}
	if !identifier.MatchString(relationship) {
		return "", fmt.Errorf("invalid relationship type %q", relationship)
	}
	return fmt.Sprintf(`
		MATCH (c:Candidate {content_hash: $content_hash})
		UNWIND $names AS item
		MERGE (a:%s {name: item})
		MERGE (c)-[:%s]->(a)
	`, label, relationship), nil
}

// IndexQueries creates a uniqueness constraint on every merge key: Candidate.content_hash
// and name on each attribute label.
func IndexQueries(dialect string) []string {
	keys := [][2]string{{"Candidate", "content_hash"}}
	for _, c := range model.Categories {
		keys = append(keys, [2]string{c.Label, "name"})
	}

	var queries []string
	for _, k := range keys {
		label, prop := k[0], k[1]
		switch dialect {
		case DialectMemgraph:
			queries = append(queries,
				fmt.Sprintf("CREATE INDEX ON :%s(%s);", label, prop),
				fmt.Sprintf("CREATE CONSTRAINT ON (n:%s) ASSERT n.%s IS UNIQUE;", label, prop),
			)
		default:
			queries = append(queries, fmt.Sprintf(
				"CREATE CONSTRAINT %s_%s_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.%s IS UNIQUE",
				strings.ToLower(label), prop, label, prop,
			))
		}
	}
	return queries
}
