package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pauligroup/grouping"
	"github.com/katalvlaran/pauligroup/pauli"
)

// scenarioWords is the headline fixture: Y(0), X(0)⊗X(1), Z(1).
func scenarioWords() []pauli.Word {
	return []pauli.Word{
		{"0": pauli.Y},
		{"0": pauli.X, "1": pauli.X},
		{"1": pauli.Z},
	}
}

// assertSameWords compares grouped words by operator equality.
func assertSameWords(t *testing.T, want, got [][]pauli.Word) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "group %d", i)
		for j := range want[i] {
			assert.True(t, want[i][j].Equal(got[i][j]),
				"group %d word %d: want %v, got %v", i, j, want[i][j], got[i][j])
		}
	}
}

// TestOptimizeMeasurements_QWC verifies the qwc/rlf scenario: X(0)⊗X(1)
// lands alone, Y(0) and Z(1) share a group, and every qwc group is rewritten
// into the shared Z basis.
func TestOptimizeMeasurements_QWC(t *testing.T) {
	res, err := grouping.OptimizeMeasurements(scenarioWords(), nil, nil)
	require.NoError(t, err)

	assertSameWords(t, [][]pauli.Word{
		{{"0": pauli.X, "1": pauli.X}},
		{{"0": pauli.Y}, {"1": pauli.Z}},
	}, res.Groups)

	assertSameWords(t, [][]pauli.Word{
		{{"0": pauli.Z, "1": pauli.Z}},
		{{"0": pauli.Z}, {"1": pauli.Z}},
	}, res.Diagonalized)

	assert.Nil(t, res.Coefficients, "no coefficients were supplied")
}

// TestOptimizeMeasurements_Coefficients verifies coefficients are regrouped
// in exact alignment with their words.
func TestOptimizeMeasurements_Coefficients(t *testing.T) {
	coeffs := []float64{1.43, 4.21, 0.97}

	res, err := grouping.OptimizeMeasurements(scenarioWords(), coeffs, nil)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{4.21}, {1.43, 0.97}}, res.Coefficients)
}

// TestOptimizeMeasurements_LargestFirst verifies the alternate colouring
// method reaches the same two groups on the scenario fixture.
func TestOptimizeMeasurements_LargestFirst(t *testing.T) {
	opts := grouping.DefaultOptions()
	opts.Method = grouping.LargestFirst

	res, err := grouping.OptimizeMeasurements(scenarioWords(), nil, &opts)
	require.NoError(t, err)

	assertSameWords(t, [][]pauli.Word{
		{{"0": pauli.X, "1": pauli.X}},
		{{"0": pauli.Y}, {"1": pauli.Z}},
	}, res.Groups)
}

// TestOptimizeMeasurements_CommutingUndiagonalized verifies non-qwc
// groupings come back without a diagonalized form: no basis-change rule is
// defined for them.
func TestOptimizeMeasurements_CommutingUndiagonalized(t *testing.T) {
	for _, rel := range []grouping.Relation{grouping.Commuting, grouping.Anticommuting} {
		opts := grouping.DefaultOptions()
		opts.Relation = rel

		res, err := grouping.OptimizeMeasurements(scenarioWords(), nil, &opts)
		require.NoError(t, err, rel)
		assert.NotEmpty(t, res.Groups, rel)
		assert.Nil(t, res.Diagonalized, "%s groups stay un-diagonalized", rel)
	}
}

// TestOptimizeMeasurements_AnticommutingIdentities verifies distinct
// identity observables end up in singleton groups under anticommuting: the
// identity never anticommutes with anything.
func TestOptimizeMeasurements_AnticommutingIdentities(t *testing.T) {
	words := []pauli.Word{{"0": pauli.I}, {"0": pauli.I}, {"7": pauli.I}}
	opts := grouping.DefaultOptions()
	opts.Relation = grouping.Anticommuting

	res, err := grouping.OptimizeMeasurements(words, nil, &opts)
	require.NoError(t, err)
	require.Len(t, res.Groups, 3, "pairwise incompatible identities")
	for i, group := range res.Groups {
		assert.Len(t, group, 1, "group %d", i)
	}
}

// TestOptimizeMeasurements_EmptyBatch verifies the empty input yields an
// empty result, not an error.
func TestOptimizeMeasurements_EmptyBatch(t *testing.T) {
	res, err := grouping.OptimizeMeasurements(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Groups)
	assert.Empty(t, res.Diagonalized)
	assert.Nil(t, res.Coefficients)
}

// TestOptimizeMeasurements_CoefficientMismatch verifies the length check
// fires before any graph work, with no partial result.
func TestOptimizeMeasurements_CoefficientMismatch(t *testing.T) {
	res, err := grouping.OptimizeMeasurements(scenarioWords(), []float64{1.0, 2.0}, nil)
	assert.ErrorIs(t, err, grouping.ErrCoefficientCount)
	assert.Nil(t, res)
}

// TestOptimizeMeasurements_UnknownTags verifies unrecognized relation and
// method tags fail with validation errors naming the invalid tag.
func TestOptimizeMeasurements_UnknownTags(t *testing.T) {
	opts := grouping.DefaultOptions()
	opts.Relation = "almost-commuting"
	_, err := grouping.OptimizeMeasurements(scenarioWords(), nil, &opts)
	assert.ErrorIs(t, err, grouping.ErrUnknownRelation)
	assert.Contains(t, err.Error(), `"almost-commuting"`)

	opts = grouping.DefaultOptions()
	opts.Method = "dsatur"
	_, err = grouping.OptimizeMeasurements(scenarioWords(), nil, &opts)
	assert.ErrorIs(t, err, grouping.ErrUnknownMethod)
	assert.Contains(t, err.Error(), `"dsatur"`)
}

// TestGroupObservables verifies the grouping-only entry point returns words
// and aligned coefficients without any diagonalization step.
func TestGroupObservables(t *testing.T) {
	groups, coeffs, err := grouping.GroupObservables(scenarioWords(), []float64{1.43, 4.21, 0.97}, nil)
	require.NoError(t, err)

	assertSameWords(t, [][]pauli.Word{
		{{"0": pauli.X, "1": pauli.X}},
		{{"0": pauli.Y}, {"1": pauli.Z}},
	}, groups)
	assert.Equal(t, [][]float64{{4.21}, {1.43, 0.97}}, coeffs)
}
