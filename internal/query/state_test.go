package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want State
	}{
		{
			name: "empty",
			raw:  "",
			want: State{},
		},
		{
			name: "all parameters",
			raw:  "sex=f&query=Ann&centuries=18&centuries=19&sort=born&order=desc",
			want: State{
				Sex:       models.SexFemale,
				Query:     "Ann",
				Centuries: []int{18, 19},
				Sort:      FieldBorn,
				Order:     OrderDesc,
			},
		},
		{
			name: "unknown sex is unset",
			raw:  "sex=x",
			want: State{},
		},
		{
			name: "invalid centuries dropped",
			raw:  "centuries=abc&centuries=15&centuries=17&centuries=17",
			want: State{Centuries: []int{17}},
		},
		{
			name: "unknown sort field is unset",
			raw:  "sort=age&order=desc",
			want: State{},
		},
		{
			name: "order other than desc is ascending",
			raw:  "sort=name&order=up",
			want: State{Sort: FieldName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(mustQuery(t, tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateEncodeIsCanonical(t *testing.T) {
	s := State{
		Sort:      FieldName,
		Order:     OrderDesc,
		Centuries: []int{19, 16},
		Query:     "bob",
		Sex:       models.SexMale,
	}
	assert.Equal(t, "centuries=19&centuries=16&order=desc&query=bob&sex=m&sort=name", s.Encode())

	// Round trip through the query string
	assert.Equal(t, s, Parse(mustQuery(t, s.Encode())))
}

func TestStateHasFilters(t *testing.T) {
	assert.False(t, State{Sort: FieldBorn}.HasFilters())
	assert.True(t, State{Query: "a"}.HasFilters())
	assert.True(t, State{Centuries: []int{20}}.HasFilters())
	assert.True(t, State{Sex: models.SexMale}.HasFilters())
}
