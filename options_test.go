package labelcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labelcodec/errs"
)

func TestWithCapacity(t *testing.T) {
	t.Run("valid capacity", func(t *testing.T) {
		codec, err := NewStringCodec(WithCapacity[string](128))
		require.NoError(t, err)
		require.Equal(t, 128, codec.capacity)
		require.False(t, codec.IsFitted())
	})

	t.Run("negative capacity", func(t *testing.T) {
		codec, err := NewStringCodec(WithCapacity[string](-1))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		require.Nil(t, codec)
	})
}

func TestWithClasses(t *testing.T) {
	t.Run("constructs a fitted codec", func(t *testing.T) {
		codec, err := NewStringCodec(WithClasses("cancel_flight", "book_flight", "cancel_flight"))
		require.NoError(t, err)
		require.True(t, codec.IsFitted())
		require.Equal(t, []string{"book_flight", "cancel_flight"}, codec.Classes())

		labels, err := codec.Decode([]int{1, 0})
		require.NoError(t, err)
		require.Equal(t, []string{"cancel_flight", "book_flight"}, labels)
	})

	t.Run("matches a codec fitted by encode", func(t *testing.T) {
		trained, err := NewStringCodec()
		require.NoError(t, err)
		_, err = trained.Encode([]string{"greet", "alarm", "greet", "weather"})
		require.NoError(t, err)

		serving, err := NewStringCodec(WithClasses(trained.Classes()...))
		require.NoError(t, err)
		require.Equal(t, trained.Fingerprint(), serving.Fingerprint())
	})

	t.Run("empty classes", func(t *testing.T) {
		codec, err := NewStringCodec(WithClasses[string]())
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		require.ErrorIs(t, err, errs.ErrEmptyLabels)
		require.Nil(t, codec)
	})

	t.Run("unordered class", func(t *testing.T) {
		codec, err := New[float64](WithClasses(1.0, math.NaN()))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		require.ErrorIs(t, err, errs.ErrUnorderedLabel)
		require.Nil(t, codec)
	})

	t.Run("caller slice is not retained", func(t *testing.T) {
		classes := []string{"b", "a"}
		codec, err := NewStringCodec(WithClasses(classes...))
		require.NoError(t, err)

		classes[0] = "z"
		require.Equal(t, []string{"a", "b"}, codec.Classes())
	})
}
