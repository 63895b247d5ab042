package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyinvite/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestBuildTally(t *testing.T) {
	rows := []domain.TallyRow{
		{OptionID: 1, OptionName: "banana", VoteID: ptr(int64(10)), VoterName: ptr("Ann")},
		{OptionID: 2, OptionName: "Apple", VoteID: ptr(int64(11)), VoterName: ptr("Bo, Jr.")},
		{OptionID: 3, OptionName: "Cherry", VoteID: ptr(int64(12)), VoterName: ptr("Ann")},
		{OptionID: 3, OptionName: "Cherry", VoteID: ptr(int64(13))},
		{OptionID: 4, OptionName: "Date"},
	}

	got := buildTally(rows)
	require.Len(t, got, 4)

	assert.Equal(t, "Cherry", got[0].Name)
	assert.Equal(t, 2, got[0].VoteCount)
	assert.Equal(t, []string{"Ann"}, got[0].Voters)
	assert.InDelta(t, 50.0, got[0].Pct, 1e-9)

	// Ties order case-insensitively by name.
	assert.Equal(t, "Apple", got[1].Name)
	assert.Equal(t, []string{"Bo, Jr."}, got[1].Voters)
	assert.Equal(t, "banana", got[2].Name)
	assert.InDelta(t, 25.0, got[2].Pct, 1e-9)

	assert.Equal(t, "Date", got[3].Name)
	assert.Equal(t, 0, got[3].VoteCount)
	assert.Equal(t, []string{}, got[3].Voters)
	assert.Equal(t, 0.0, got[3].Pct)
}

func TestBuildTally_Empty(t *testing.T) {
	got := buildTally(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
