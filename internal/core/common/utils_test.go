package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     sample
	}{
		{"plain", `{"name":"Ada","skills":["go"]}`, sample{Name: "Ada", Skills: []string{"go"}}},
		{"fenced", "```json\n{\"name\":\"Ada\"}\n```", sample{Name: "Ada"}},
		{"prose around", "Here you go:\n{\"name\":\"Ada\",\"skills\":[]}\nHope it helps", sample{Name: "Ada", Skills: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON[sample](tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSON_NoObject(t *testing.T) {
	_, err := ParseJSON[sample]("I could not read this resume.")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestParseJSON_RejectsArray(t *testing.T) {
	for _, response := range []string{
		`[{"name":"x"}]`,
		"```json\n[{\"name\":\"x\"}, {\"name\":\"y\"}]\n```",
		"Here are the profiles: [{\"name\":\"x\"}]",
	} {
		_, err := ParseJSON[sample](response)
		assert.ErrorIs(t, err, ErrNoJSONObject, response)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON[sample](`{"name": "Ada", "skills": [}`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}
