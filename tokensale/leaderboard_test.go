package tokensale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(address, referred string, ordinal uint64) LeaderboardEntry {
	return LeaderboardEntry{Address: address, ReferredZAPP: referred, Ordinal: ordinal}
}

func TestRankOnLeaderboard(t *testing.T) {
	t.Parallel()

	t.Run("first entry", func(t *testing.T) {
		t.Parallel()
		board, err := rankOnLeaderboard(nil, entry("a", "100", 0))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{entry("a", "100", 0)}, board)
	})

	t.Run("sorted descending", func(t *testing.T) {
		t.Parallel()
		board, err := rankOnLeaderboard([]LeaderboardEntry{
			entry("a", "300", 0),
			entry("b", "100", 1),
		}, entry("c", "200", 2))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("a", "300", 0),
			entry("c", "200", 2),
			entry("b", "100", 1),
		}, board)
	})

	t.Run("update moves existing entry", func(t *testing.T) {
		t.Parallel()
		board, err := rankOnLeaderboard([]LeaderboardEntry{
			entry("a", "300", 0),
			entry("b", "100", 1),
		}, entry("b", "400", 1))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("b", "400", 1),
			entry("a", "300", 0),
		}, board)
	})

	t.Run("tie goes to earlier registration", func(t *testing.T) {
		t.Parallel()
		board, err := rankOnLeaderboard([]LeaderboardEntry{
			entry("a", "100", 3),
		}, entry("b", "100", 1))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("b", "100", 1),
			entry("a", "100", 3),
		}, board)
	})

	t.Run("tie keeps earlier registration on top", func(t *testing.T) {
		t.Parallel()
		board, err := rankOnLeaderboard([]LeaderboardEntry{
			entry("a", "100", 1),
		}, entry("b", "100", 3))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("a", "100", 1),
			entry("b", "100", 3),
		}, board)
	})

	t.Run("overflow drops the last entry", func(t *testing.T) {
		t.Parallel()
		board := []LeaderboardEntry{
			entry("a", "600", 0),
			entry("b", "500", 1),
			entry("c", "400", 2),
			entry("d", "300", 3),
			entry("e", "200", 4),
		}
		board, err := rankOnLeaderboard(board, entry("f", "250", 5))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("a", "600", 0),
			entry("b", "500", 1),
			entry("c", "400", 2),
			entry("d", "300", 3),
			entry("f", "250", 5),
		}, board)
	})

	t.Run("below the board leaves it unchanged", func(t *testing.T) {
		t.Parallel()
		board := []LeaderboardEntry{
			entry("a", "600", 0),
			entry("b", "500", 1),
			entry("c", "400", 2),
			entry("d", "300", 3),
			entry("e", "200", 4),
		}
		board, err := rankOnLeaderboard(board, entry("f", "100", 5))
		require.NoError(t, err)
		require.Equal(t, []LeaderboardEntry{
			entry("a", "600", 0),
			entry("b", "500", 1),
			entry("c", "400", 2),
			entry("d", "300", 3),
			entry("e", "200", 4),
		}, board)
	})
}

func TestLeaderboardRank(t *testing.T) {
	t.Parallel()

	board := []LeaderboardEntry{
		entry("a", "300", 0),
		entry("b", "200", 1),
	}
	require.Equal(t, 0, leaderboardRank(board, "a"))
	require.Equal(t, 1, leaderboardRank(board, "b"))
	require.Equal(t, -1, leaderboardRank(board, "c"))
}

func TestDeriveReferralCode(t *testing.T) {
	t.Parallel()

	code := deriveReferralCode("1111111111111111111111111111111111111111", 0, 0)
	require.Len(t, code, referralCodeLength)
	require.Regexp(t, "^[0-9a-f]{6}$", code)

	// Deterministic for the same inputs, distinct across wallet, ordinal
	// and nonce.
	require.Equal(t, code, deriveReferralCode("1111111111111111111111111111111111111111", 0, 0))
	require.NotEqual(t, code, deriveReferralCode("2222222222222222222222222222222222222222", 0, 0))
	require.NotEqual(t, code, deriveReferralCode("1111111111111111111111111111111111111111", 1, 0))
	require.NotEqual(t, code, deriveReferralCode("1111111111111111111111111111111111111111", 0, 1))
}
