package resolver

import (
	"errors"
	"testing"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(names ...string) []domain.Category {
	out := make([]domain.Category, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Category{Name: n})
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name, query string
		want        int
	}{
		{"nature", "nature", 6},
		{"nature", "natur", 5},
		{"nature", "NATURE", 6},
		{"nature", "nxtxre", 4},
		{"nature", "atur", 0},
		{"nature", "", 0},
		{"ab", "abcdef", 2},
		{"Städte", "städte", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.name, tt.query))
		})
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	entries := categories("space", "Nature", "cities")

	for _, q := range []string{"Nature", "nature", "NATURE", "natur", "n"} {
		got, err := Resolve(entries, q, "category")
		require.NoError(t, err, q)
		assert.Equal(t, "Nature", got.Name, q)
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	entries := categories("nature", "space")

	// "naxux" matches n, a, u: 3/5 = 0.6
	_, err := Resolve(entries, "naxux", "category")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAmbiguousName))

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, []string{"nature"}, de.Suggestions)
	assert.Equal(t, "No category for name: naxux, did you mean: nature?", de.Error())
}

func TestResolve_HalfIsAmbiguous(t *testing.T) {
	// "naxx" scores 2/4 exactly on the threshold
	_, err := Resolve(categories("nature"), "naxx", "category")
	assert.ErrorIs(t, err, domain.ErrAmbiguousName)
}

func TestResolve_Unknown(t *testing.T) {
	entries := categories("aaaa", "abbb", "abcc", "abcd", "bbbb", "cccc", "dddd")

	_, err := Resolve(entries, "abzzzzzzzz", "category")
	require.ErrorIs(t, err, domain.ErrUnknownName)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	require.Len(t, de.Suggestions, 5)
	// abbb, abcc and abcd score 2, then aaaa and bbbb score 1 in input order
	assert.Equal(t, []string{"abbb", "abcc", "abcd", "aaaa", "bbbb"}, de.Suggestions)
}

func TestResolve_UnknownFewerThanFive(t *testing.T) {
	_, err := Resolve(categories("one", "two"), "zzzz", "supplier")

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.KindUnknownName, de.Kind)
	assert.Equal(t, []string{"one", "two"}, de.Suggestions)
	assert.Contains(t, de.Error(), "No supplier for name: zzzz")
}

func TestResolve_NoCandidates(t *testing.T) {
	_, err := Resolve([]domain.SupplierRef{}, "anything", "supplier")
	require.ErrorIs(t, err, domain.ErrNoCandidatesConfigured)
	assert.Equal(t, "No suppliers defined in config file.", err.Error())
}

func TestResolve_EmptyQueryReturnsFirst(t *testing.T) {
	got, err := Resolve(categories("first", "second"), "", "category")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func TestResolve_TieKeepsInputOrder(t *testing.T) {
	got, err := Resolve(categories("cats", "cars"), "ca", "category")
	require.NoError(t, err)
	assert.Equal(t, "cats", got.Name)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	entries := categories("zeta", "alpha", "alps")
	_, _ = Resolve(entries, "alp", "category")
	assert.Equal(t, categories("zeta", "alpha", "alps"), entries)
}
