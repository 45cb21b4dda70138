package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAttributesQuery(t *testing.T) {
	q, err := MergeAttributesQuery("Skill", "HAS_SKILL")
	require.NoError(t, err)
	assert.Contains(t, q, "MERGE (a:Skill {name: item})")
	assert.Contains(t, q, "MERGE (c)-[:HAS_SKILL]->(a)")
	assert.Contains(t, q, "UNWIND $names AS item")
}

func TestMergeAttributesQuery_RejectsInjection(t *testing.T) {
	_, err := MergeAttributesQuery("Skill) DETACH DELETE (x", "HAS_SKILL")
	assert.Error(t, err)

	_, err = MergeAttributesQuery("Skill", "HAS SKILL")
	assert.Error(t, err)

	_, err = MergeAttributesQuery("", "HAS_SKILL")
	assert.Error(t, err)
}

func TestMatchAllSkillsQuery_ClauseOrder(t *testing.T) {
	q := MatchAllSkillsQuery
	clauses := []string{
		"MATCH (c:Candidate)-[:HAS_SKILL]->(s:Skill)",
		"WHERE s.name IN $skills",
		"WITH c, count(DISTINCT s.name) AS matched",
		"WHERE matched = size($skills)",
		"RETURN DISTINCT c.content_hash AS content_hash, c.name AS name, c.content AS content",
		"ORDER BY name, content_hash",
	}

	last := -1
	for _, clause := range clauses {
		i := strings.Index(q, clause)
		require.GreaterOrEqual(t, i, 0, "missing clause %q", clause)
		assert.Greater(t, i, last, "clause %q out of order", clause)
		last = i
	}
}

func TestIndexQueries(t *testing.T) {
	neo := IndexQueries(DialectNeo4j)
	assert.Len(t, neo, 6)
	assert.Contains(t, neo, "CREATE CONSTRAINT candidate_content_hash_unique IF NOT EXISTS FOR (n:Candidate) REQUIRE n.content_hash IS UNIQUE")
	assert.Contains(t, neo, "CREATE CONSTRAINT skill_name_unique IF NOT EXISTS FOR (n:Skill) REQUIRE n.name IS UNIQUE")

	mg := IndexQueries(DialectMemgraph)
	assert.Len(t, mg, 12)
	assert.Contains(t, mg, "CREATE INDEX ON :Candidate(content_hash);")
	assert.Contains(t, mg, "CREATE CONSTRAINT ON (n:Certification) ASSERT n.name IS UNIQUE;")
}
