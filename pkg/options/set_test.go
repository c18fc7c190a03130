package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testSet(include, exclude []string) *Set[int] {
	return &Set[int]{
		Base: Base{Include: include, Exclude: exclude},
		Options: NewMap(
			Item[int]{Key: "a", Value: 1},
			Item[int]{Key: "b", Value: 2},
			Item[int]{Key: "c", Value: 3},
		),
	}
}

func TestSet_FilteredKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		include  []string
		exclude  []string
		expected []string
		reason   string
	}{
		{
			name:     "no lists",
			expected: []string{"a", "b", "c"},
			reason:   "all options in declaration order",
		},
		{
			name:     "explicit include keeps its order",
			include:  []string{"c", "a"},
			expected: []string{"c", "a"},
			reason:   "result order equals include order",
		},
		{
			name:     "wildcard include falls back to option order",
			include:  []string{Wildcard},
			expected: []string{"a", "b", "c"},
			reason:   "* means all options in declaration order",
		},
		{
			name:     "exclude removes keys",
			include:  []string{"a", "c"},
			exclude:  []string{"c"},
			expected: []string{"a"},
			reason:   "excluded keys are removed from the include list",
		},
		{
			name:     "wildcard include with exclude",
			include:  []string{Wildcard},
			exclude:  []string{"b"},
			expected: []string{"a", "c"},
			reason:   "all keys minus the excluded ones",
		},
		{
			name:     "wildcard exclude short-circuits",
			include:  []string{"a", "b"},
			exclude:  []string{Wildcard},
			expected: []string{},
			reason:   "* in exclude yields an empty result regardless of include",
		},
		{
			name:     "dangling include entry is kept",
			include:  []string{"z"},
			expected: []string{"z"},
			reason:   "keys are not checked against the option catalog",
		},
		{
			name:     "empty include list",
			include:  []string{},
			expected: []string{},
			reason:   "an explicitly empty include list selects nothing",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := testSet(tt.include, tt.exclude)
			assert.Equal(t, tt.expected, set.FilteredKeys(), tt.reason)
		})
	}
}

func TestSet_FilteredValues(t *testing.T) {
	t.Parallel()

	t.Run("values follow key order", func(t *testing.T) {
		t.Parallel()

		set := testSet([]string{"c", "a"}, nil)
		assert.Equal(t, []int{3, 1}, set.FilteredValues())
	})

	t.Run("include with exclusion", func(t *testing.T) {
		t.Parallel()

		set := testSet([]string{"a", "c"}, []string{"c"})
		assert.Equal(t, []string{"a"}, set.FilteredKeys())
		assert.Equal(t, []int{1}, set.FilteredValues())
	})

	t.Run("dangling keys are dropped from values", func(t *testing.T) {
		t.Parallel()

		set := &Set[int]{
			Base:    Base{Include: []string{"z"}},
			Options: NewMap(Item[int]{Key: "a", Value: 1}),
		}
		assert.Equal(t, []string{"z"}, set.FilteredKeys())
		assert.Empty(t, set.FilteredValues())
	})
}

func TestSet_FilteredItems(t *testing.T) {
	t.Parallel()

	set := testSet([]string{"b", "z", "a"}, nil)

	items := set.FilteredItems()
	assert.Equal(t, []Item[int]{{Key: "b", Value: 2}, {Key: "a", Value: 1}}, items,
		"dangling keys are omitted, order is preserved")

	// Item keys must agree with FilteredKeys modulo dangling names.
	keys := set.FilteredKeys()
	assert.Equal(t, []string{"b", "z", "a"}, keys)
	assert.Len(t, set.FilteredValues(), len(keys)-1)
}

func TestSet_QueriesReflectCurrentState(t *testing.T) {
	t.Parallel()

	set := testSet(nil, nil)
	require.Equal(t, []string{"a", "b", "c"}, set.FilteredKeys())

	// The queries are computed on every call, not cached.
	set.Exclude = []string{"b"}
	assert.Equal(t, []string{"a", "c"}, set.FilteredKeys())

	set.Options.Set("d", 4)
	set.Exclude = nil
	assert.Equal(t, []string{"a", "b", "c", "d"}, set.FilteredKeys())
}

func TestSet_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	doc := `
include:
  - gamma
  - alpha
exclude:
  - beta
options:
  gamma: 3
  alpha: 1
  beta: 2
`
	var set Set[int]
	require.NoError(t, yaml.Unmarshal([]byte(doc), &set))

	assert.Equal(t, []string{"gamma", "alpha"}, set.FilteredKeys())
	assert.Equal(t, []int{3, 1}, set.FilteredValues())
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, set.Options.Keys(),
		"document order of the options mapping is preserved")
}

func TestSingleAndMulti_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	var single Single[string]
	require.NoError(t, yaml.Unmarshal([]byte(`
selected: si
options:
  si: SI units
  au: atomic units
`), &single))
	assert.Equal(t, "si", single.Selected)
	assert.Equal(t, []string{"si", "au"}, single.FilteredKeys())

	var multi Multi[string]
	require.NoError(t, yaml.Unmarshal([]byte(`
selected: [name, authors]
options:
  name: Name
  authors: Authors
  comment: Comment
`), &multi))
	assert.Equal(t, []string{"name", "authors"}, multi.Selected)
	assert.Equal(t, []string{"name", "authors", "comment"}, multi.FilteredKeys())
}
