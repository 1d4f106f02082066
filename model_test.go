package scout_test

import (
	"testing"

	"github.com/avisser/scout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	temp := func(v float64) *float64 { return &v }

	t.Run("zero value is valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, scout.Request{}.Validate())
	})

	t.Run("temperature zero is valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, scout.Request{Temperature: temp(0)}.Validate())
	})

	t.Run("temperature above two is invalid", func(t *testing.T) {
		t.Parallel()
		err := scout.Request{Temperature: temp(2.5)}.Validate()
		assert.ErrorIs(t, err, scout.ErrValidation)
	})

	t.Run("negative temperature is invalid", func(t *testing.T) {
		t.Parallel()
		err := scout.Request{Temperature: temp(-0.1)}.Validate()
		assert.ErrorIs(t, err, scout.ErrValidation)
	})

	t.Run("negative max tokens is invalid", func(t *testing.T) {
		t.Parallel()
		err := scout.Request{MaxTokens: -1}.Validate()
		assert.ErrorIs(t, err, scout.ErrValidation)
	})
}
