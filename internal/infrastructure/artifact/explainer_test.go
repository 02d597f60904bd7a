package artifact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/artifact"
)

func TestLinearExplainer_Attributions(t *testing.T) {
	model, err := artifact.NewLogisticModel([]float64{0.5, -0.25, 1.0}, -0.1)
	require.NoError(t, err)

	explainer, err := artifact.NewLinearExplainer(model, []float64{1.0, 2.0, 0.5})
	require.NoError(t, err)

	t.Run("contribution is coefficient times deviation from background", func(t *testing.T) {
		contributions, err := explainer.Attributions([]float64{3.0, 2.0, 1.5})
		require.NoError(t, err)
		require.Len(t, contributions, 3)

		assert.InDelta(t, 0.5*(3.0-1.0), contributions[0], 1e-12)
		assert.InDelta(t, 0.0, contributions[1], 1e-12)
		assert.InDelta(t, 1.0*(1.5-0.5), contributions[2], 1e-12)
	})

	t.Run("contributions sum to the margin difference from background", func(t *testing.T) {
		vector := []float64{3.0, -1.0, 2.5}
		contributions, err := explainer.Attributions(vector)
		require.NoError(t, err)

		var sum float64
		for _, c := range contributions {
			sum += c
		}
		expected := model.Margin(vector) - model.Margin([]float64{1.0, 2.0, 0.5})
		assert.InDelta(t, expected, sum, 1e-12)
	})

	t.Run("background vector yields zero attributions", func(t *testing.T) {
		contributions, err := explainer.Attributions([]float64{1.0, 2.0, 0.5})
		require.NoError(t, err)
		for _, c := range contributions {
			assert.Zero(t, c)
		}
	})

	t.Run("rejects a vector of the wrong width", func(t *testing.T) {
		_, err := explainer.Attributions([]float64{1, 2})
		require.Error(t, err)
	})
}

func TestNewLinearExplainer(t *testing.T) {
	model, err := artifact.NewLogisticModel([]float64{0.5, -0.25, 1.0}, -0.1)
	require.NoError(t, err)

	t.Run("rejects a background of the wrong width", func(t *testing.T) {
		_, err := artifact.NewLinearExplainer(model, []float64{1.0})
		require.Error(t, err)
	})

	t.Run("rejects a nil model", func(t *testing.T) {
		_, err := artifact.NewLinearExplainer(nil, []float64{1.0, 2.0, 0.5})
		require.Error(t, err)
	})
}
