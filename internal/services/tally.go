package services

import (
	"cmp"
	"slices"
	"strings"

	"partyinvite/internal/domain"
)

// buildTally groups the joined option/vote/guest rows per option.
// Rows of one option must be contiguous, which ListTallyRows guarantees by ordering on option id.
func buildTally(rows []domain.TallyRow) []*domain.OptionTally {
	tallies := []*domain.OptionTally{}
	var cur *domain.OptionTally
	total := 0
	for _, row := range rows {
		if cur == nil || cur.ID != row.OptionID {
			cur = &domain.OptionTally{
				ID:     row.OptionID,
				Name:   row.OptionName,
				Emoji:  row.Emoji,
				Voters: []string{},
			}
			tallies = append(tallies, cur)
		}
		if row.VoteID == nil {
			continue
		}
		cur.VoteCount++
		total++
		if row.VoterName != nil {
			cur.Voters = append(cur.Voters, *row.VoterName)
		}
	}

	for _, t := range tallies {
		if total > 0 {
			t.Pct = float64(t.VoteCount) * 100 / float64(total)
		}
	}

	slices.SortStableFunc(tallies, func(a, b *domain.OptionTally) int {
		if c := cmp.Compare(b.VoteCount, a.VoteCount); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return tallies
}
