package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/artifact"
)

func TestLoad(t *testing.T) {
	t.Run("loads a complete bundle", func(t *testing.T) {
		bundle, err := artifact.Load(filepath.Join("testdata", "bundle"))
		require.NoError(t, err)

		assert.Equal(t, "2025.08.1", bundle.Version())
		assert.Equal(t, 15, bundle.FeatureCount())
		assert.Equal(t, "age", bundle.FeatureName(0))
		assert.Equal(t, "poutcome", bundle.FeatureName(14))
		assert.Equal(t, 0.5, bundle.Policy().DecisionThreshold)
		assert.Equal(t, 0.35, bundle.Policy().RiskBands.MediumMin)
		assert.Equal(t, 0.65, bundle.Policy().RiskBands.HighMin)

		table, ok := bundle.EncoderFor("job")
		require.True(t, ok)
		assert.Equal(t, 9.0, table["technician"])

		_, ok = bundle.EncoderFor("age")
		assert.False(t, ok)
	})

	t.Run("predictor and explainer agree on input width", func(t *testing.T) {
		bundle, err := artifact.Load(filepath.Join("testdata", "bundle"))
		require.NoError(t, err)

		assert.Equal(t, bundle.FeatureCount(), bundle.Predictor().NumFeatures())
		assert.Equal(t, bundle.FeatureCount(), bundle.Explainer().NumFeatures())
	})

	t.Run("fails when predictor width does not match feature names", func(t *testing.T) {
		_, err := artifact.Load(filepath.Join("testdata", "width_mismatch"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "predictor expects 3 features")
	})

	t.Run("fails when a required file is missing", func(t *testing.T) {
		_, err := artifact.Load(filepath.Join("testdata", "missing_model"))
		require.Error(t, err)
	})

	t.Run("fails on a nonexistent directory", func(t *testing.T) {
		_, err := artifact.Load(filepath.Join("testdata", "no_such_bundle"))
		require.Error(t, err)
	})

	t.Run("fails on a corrupt manifest", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte("{not yaml: ["), 0o600))

		_, err := artifact.Load(dir)
		require.Error(t, err)
	})

	t.Run("fails when the manifest omits artifact files", func(t *testing.T) {
		dir := t.TempDir()
		manifest := "version: \"v1\"\nfeature_names: [age, balance, day, campaign, previous]\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(manifest), 0o600))

		_, err := artifact.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must name model, encoders and explainer files")
	})
}
