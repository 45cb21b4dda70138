// Package drivertest provides an in-memory driver.GraphDriver for tests. It understands the
// exact query set defined in package driver and nothing else.
package drivertest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/driver"
)

type candidate struct {
	hash      string
	name      string
	content   string
	createdAt interface{}
}

type attrKey struct {
	label string
	name  string
}

type edgeKey struct {
	hash string
	rel  string
	attr attrKey
}

type state struct {
	candidates map[string]*candidate
	attributes map[attrKey]struct{}
	edges      map[edgeKey]struct{}
}

func newState() state {
	return state{
		candidates: map[string]*candidate{},
		attributes: map[attrKey]struct{}{},
		edges:      map[edgeKey]struct{}{},
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.candidates {
		cp := *v
		c.candidates[k] = &cp
	}
	for k := range s.attributes {
		c.attributes[k] = struct{}{}
	}
	for k := range s.edges {
		c.edges[k] = struct{}{}
	}
	return c
}

// MemoryDriver keeps a property graph in maps and answers the driver package's queries.
type MemoryDriver struct {
	// Err fails every query when set.
	Err error
	// FailQuery, when set, is consulted before each query; a non-nil error fails it.
	FailQuery func(query string) error

	Queries []string
	Batches int

	mu         sync.Mutex
	st         state
	attrByStmt map[string]model.Category
}

func NewMemoryDriver() *MemoryDriver {
	m := &MemoryDriver{st: newState(), attrByStmt: map[string]model.Category{}}
	for _, c := range model.Categories {
		q, err := driver.MergeAttributesQuery(c.Label, c.Relationship)
		if err != nil {
			panic(err)
		}
		m.attrByStmt[q] = c
	}
	return m
}

func (m *MemoryDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.run(query, params)
}

func (m *MemoryDriver) ExecuteBatch(ctx context.Context, statements []driver.Statement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Batches++
	snapshot := m.st.clone()
	for _, st := range statements {
		if _, err := m.run(st.Query, st.Params); err != nil {
			m.st = snapshot
			return fmt.Errorf("failed to execute batch of %d statements: %w", len(statements), err)
		}
	}
	return nil
}

func (m *MemoryDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MemoryDriver) Close(ctx context.Context) error {
	return nil
}

// NodeCount and EdgeCount expose raw sizes for assertions.
func (m *MemoryDriver) NodeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.st.candidates) + len(m.st.attributes)
}

func (m *MemoryDriver) EdgeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.st.edges)
}

// AttributeNames lists the names stored under a label, sorted.
func (m *MemoryDriver) AttributeNames(label string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for k := range m.st.attributes {
		if k.label == label {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

// EdgesFrom counts edges of one relationship type leaving a candidate.
func (m *MemoryDriver) EdgesFrom(hash, rel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.st.edges {
		if k.hash == hash && k.rel == rel {
			n++
		}
	}
	return n
}

func (m *MemoryDriver) run(query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if m.FailQuery != nil {
		if err := m.FailQuery(query); err != nil {
			return neo4j.EagerResult{}, err
		}
	}

	if cat, ok := m.attrByStmt[query]; ok {
		return m.mergeAttributes(cat, params)
	}

	switch query {
	case driver.MergeCandidateQuery:
		hash := str(params["content_hash"])
		c, ok := m.st.candidates[hash]
		if !ok {
			c = &candidate{hash: hash, createdAt: params["created_at"]}
			m.st.candidates[hash] = c
		}
		c.name = str(params["name"])
		c.content = str(params["content"])
		return result([]string{"content_hash"}, []interface{}{hash}), nil

	case driver.FindCandidateQuery:
		c, ok := m.st.candidates[str(params["content_hash"])]
		if !ok {
			return result([]string{"content_hash", "name"}), nil
		}
		return result([]string{"content_hash", "name"}, []interface{}{c.hash, c.name}), nil

	case driver.GetCandidateQuery:
		return m.getCandidate(str(params["content_hash"])), nil

	case driver.MatchAllSkillsQuery:
		return m.matchAll(strs(params["skills"])), nil

	case driver.ListCandidatesQuery:
		keys := []string{"content_hash", "name"}
		var rows [][]interface{}
		for _, c := range m.sortedCandidates(nil) {
			rows = append(rows, []interface{}{c.hash, c.name})
		}
		return result(keys, rows...), nil

	case driver.StatsQuery:
		nodes := int64(len(m.st.candidates) + len(m.st.attributes))
		edges := int64(len(m.st.edges))
		return result([]string{"nodes", "edges"}, []interface{}{nodes, edges}), nil

	case driver.ClearGraphQuery:
		m.st = newState()
		return result(nil), nil
	}

	if strings.HasPrefix(strings.TrimSpace(query), "CREATE ") {
		return result(nil), nil
	}
	return neo4j.EagerResult{}, fmt.Errorf("drivertest: unsupported query: %s", query)
}

func (m *MemoryDriver) mergeAttributes(cat model.Category, params map[string]interface{}) (neo4j.EagerResult, error) {
	hash := str(params["content_hash"])
	if _, ok := m.st.candidates[hash]; !ok {
		// MATCH found nothing; UNWIND never runs.
		return result(nil), nil
	}
	for _, name := range strs(params["names"]) {
		key := attrKey{label: cat.Label, name: name}
		m.st.attributes[key] = struct{}{}
		m.st.edges[edgeKey{hash: hash, rel: cat.Relationship, attr: key}] = struct{}{}
	}
	return result(nil), nil
}

func (m *MemoryDriver) matchAll(skills []string) neo4j.EagerResult {
	keys := []string{"content_hash", "name", "content"}
	want := map[string]struct{}{}
	for _, s := range skills {
		want[s] = struct{}{}
	}

	matches := m.sortedCandidates(func(c *candidate) bool {
		matched := map[string]struct{}{}
		for e := range m.st.edges {
			if e.hash != c.hash || e.rel != model.SkillCategory.Relationship {
				continue
			}
			if _, ok := want[e.attr.name]; ok {
				matched[e.attr.name] = struct{}{}
			}
		}
		// count(DISTINCT ...) = size($skills); size counts the list as given.
		return len(matched) > 0 && len(matched) == len(skills)
	})

	var rows [][]interface{}
	for _, c := range matches {
		rows = append(rows, []interface{}{c.hash, c.name, c.content})
	}
	return result(keys, rows...)
}

func (m *MemoryDriver) getCandidate(hash string) neo4j.EagerResult {
	keys := []string{"content_hash", "name", "content", "created_at", "relationship", "item"}
	c, ok := m.st.candidates[hash]
	if !ok {
		return result(keys)
	}

	var rows [][]interface{}
	for e := range m.st.edges {
		if e.hash == hash {
			rows = append(rows, []interface{}{c.hash, c.name, c.content, c.createdAt, e.rel, e.attr.name})
		}
	}
	if len(rows) == 0 {
		rows = append(rows, []interface{}{c.hash, c.name, c.content, c.createdAt, nil, nil})
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := fmt.Sprint(rows[i][4], rows[i][5]), fmt.Sprint(rows[j][4], rows[j][5])
		return ri < rj
	})
	return result(keys, rows...)
}

func (m *MemoryDriver) sortedCandidates(keep func(*candidate) bool) []*candidate {
	var out []*candidate
	for _, c := range m.st.candidates {
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].name != out[j].name {
			return out[i].name < out[j].name
		}
		return out[i].hash < out[j].hash
	})
	return out
}

func result(keys []string, rows ...[]interface{}) neo4j.EagerResult {
	res := neo4j.EagerResult{Keys: keys, Records: []*neo4j.Record{}}
	for _, row := range rows {
		res.Records = append(res.Records, &neo4j.Record{Keys: keys, Values: row})
	}
	return res
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func strs(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, x := range t {
			out = append(out, str(x))
		}
		return out
	}
	return nil
}
