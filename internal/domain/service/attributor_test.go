package service_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asah-capstone-a25/leadscore/internal/domain/service"
	"github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"
	"github.com/asah-capstone-a25/leadscore/pkg/testutil"
)

func TestAttributor_Explain(t *testing.T) {
	attributor := service.NewAttributor()
	predictor := testutil.StaticPredictor{Features: 15, Probability: 0.4}
	vector := make([]float64, 15)

	t.Run("returns exactly five reasons ranked by magnitude", func(t *testing.T) {
		contributions := make([]float64, 15)
		contributions[8] = 0.277   // contact
		contributions[6] = -0.229  // housing
		contributions[9] = 0.177   // day
		contributions[5] = 0.168   // balance
		contributions[10] = -0.159 // month
		contributions[0] = 0.05    // age, should not make the cut

		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: contributions})

		codes, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)
		require.Len(t, codes, 5)

		assert.Equal(t, "contact", codes[0].Feature)
		assert.Equal(t, "housing", codes[1].Feature)
		assert.Equal(t, "day", codes[2].Feature)
		assert.Equal(t, "balance", codes[3].Feature)
		assert.Equal(t, "month", codes[4].Feature)

		for i := 1; i < len(codes); i++ {
			assert.GreaterOrEqual(t,
				math.Abs(codes[i-1].Value), math.Abs(codes[i].Value),
				"reasons must be ordered by non-increasing magnitude")
		}
	})

	t.Run("direction follows the contribution sign", func(t *testing.T) {
		contributions := make([]float64, 15)
		contributions[6] = -0.229
		contributions[8] = 0.277

		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: contributions})

		codes, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)

		for _, code := range codes {
			if code.Value >= 0 {
				assert.True(t, valueobject.DirectionPositive.Equal(code.Direction), "feature %s", code.Feature)
			} else {
				assert.True(t, valueobject.DirectionNegative.Equal(code.Direction), "feature %s", code.Feature)
			}
		}
	})

	t.Run("ties break on the lower feature index", func(t *testing.T) {
		contributions := make([]float64, 15)
		contributions[3] = 0.2
		contributions[1] = -0.2
		contributions[7] = 0.2

		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: contributions})

		codes, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)
		require.Len(t, codes, 5)

		assert.Equal(t, "job", codes[0].Feature)       // index 1
		assert.Equal(t, "education", codes[1].Feature) // index 3
		assert.Equal(t, "loan", codes[2].Feature)      // index 7
		// Remaining slots fill with zero contributions in index order.
		assert.Equal(t, "age", codes[3].Feature)
		assert.Equal(t, "marital", codes[4].Feature)
	})

	t.Run("features listed are distinct", func(t *testing.T) {
		contributions := make([]float64, 15)
		for i := range contributions {
			contributions[i] = float64(i) * 0.01
		}
		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: contributions})

		codes, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, code := range codes {
			assert.False(t, seen[code.Feature], "feature %s listed twice", code.Feature)
			seen[code.Feature] = true
		}
	})

	t.Run("identical vectors yield identical reasons", func(t *testing.T) {
		contributions := []float64{0.1, -0.2, 0.3, -0.4, 0.5, -0.6, 0.7, -0.8, 0.9, -1.0, 1.1, -1.2, 1.3, -1.4, 1.5}
		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: contributions})

		first, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)
		second, err := attributor.Explain(vector, bundle)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("explainer failure surfaces as AttributionError", func(t *testing.T) {
		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Err: fmt.Errorf("shape mismatch")})

		_, err := attributor.Explain(vector, bundle)
		require.Error(t, err)

		var attributionErr *service.AttributionError
		require.ErrorAs(t, err, &attributionErr)
	})

	t.Run("wrong contribution count surfaces as AttributionError", func(t *testing.T) {
		bundle := testutil.NewBundle(t, predictor, testutil.StaticExplainer{Features: 15, Contributions: make([]float64, 3)})

		_, err := attributor.Explain(vector, bundle)
		require.Error(t, err)

		var attributionErr *service.AttributionError
		require.ErrorAs(t, err, &attributionErr)
	})
}
