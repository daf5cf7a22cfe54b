package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	t.Run("accepted variations normalise identically", func(t *testing.T) {
		variations := []string{
			"https://github.com/axios/axios",
			"http://github.com/axios/axios",
			"github.com/axios/axios",
			"github.com/axios/axios/",
			"https://github.com/axios/axios/",
			"https://github.com/axios/axios.git",
			"  https://github.com/axios/axios  ",
			"https://www.github.com/axios/axios",
		}

		for _, locator := range variations {
			ref, err := ParseReference(locator)
			require.NoError(t, err, "locator %q", locator)
			assert.Equal(t, "axios", ref.Owner)
			assert.Equal(t, "axios", ref.Name)
			assert.Equal(t, "https://github.com/axios/axios", ref.NormalizedURL)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, err := ParseReference("github.com/juliangarnier/anime.git")
		require.NoError(t, err)

		second, err := ParseReference(first.NormalizedURL)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects file and branch locators", func(t *testing.T) {
		locators := []string{
			"github.com/axios/axios/blob/main/README.md",
			"https://github.com/axios/axios/tree/main",
			"github.com/axios/axios/issues",
		}

		for _, locator := range locators {
			_, err := ParseReference(locator)
			require.Error(t, err, "locator %q", locator)
			assert.True(t, errors.Is(err, ErrNonRepositoryURL), "locator %q: got %v", locator, err)
		}
	})

	t.Run("rejects malformed locators", func(t *testing.T) {
		locators := []string{
			"",
			"github.com/axios",
			"github.com/axios/",
			"github.com//axios",
			"https://gitlab.com/axios/axios",
			"not a url",
			"github.com/ax ios/axios",
			"github.com/-axios/axios",
			"github.com/axios/.axios",
		}

		for _, locator := range locators {
			_, err := ParseReference(locator)
			require.Error(t, err, "locator %q", locator)
			assert.True(t, errors.Is(err, ErrInvalidFormat), "locator %q: got %v", locator, err)
		}
	})

	t.Run("keeps dots and underscores in segments", func(t *testing.T) {
		ref, err := ParseReference("github.com/my_org/my.repo-name")
		require.NoError(t, err)
		assert.Equal(t, "my_org", ref.Owner)
		assert.Equal(t, "my.repo-name", ref.Name)
	})
}

func TestRepositoryReference_FullName(t *testing.T) {
	ref := RepositoryReference{Owner: "axios", Name: "axios"}
	assert.Equal(t, "axios/axios", ref.FullName())
}

func TestRepositoryReference_CodewikiURL(t *testing.T) {
	ref, err := ParseReference("github.com/juliangarnier/anime")
	require.NoError(t, err)
	assert.Equal(t, "https://codewiki.google/github.com/juliangarnier/anime", ref.CodewikiURL())
}
