package domain

// Clone возвращает глубокую копию записи команды
func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}

	c := *t
	c.Members = append([]string{}, t.Members...)
	c.Tournament.Vote = t.Tournament.Vote.Clone()
	c.Tournament.ExitVote = t.Tournament.ExitVote.Clone()
	if t.Distribution != nil {
		d := *t.Distribution
		d.Shares = append([]Share{}, t.Distribution.Shares...)
		d.Vote = t.Distribution.Vote.Clone()
		d.Claimed = make(map[string]int64, len(t.Distribution.Claimed))
		for k, v := range t.Distribution.Claimed {
			d.Claimed[k] = v
		}
		c.Distribution = &d
	}
	return &c
}

// Clone возвращает глубокую копию сессии голосования
func (s *VoteSession) Clone() *VoteSession {
	if s == nil {
		return nil
	}

	c := *s
	c.Ballots = append([]Ballot{}, s.Ballots...)
	if s.ResolvedAt != nil {
		resolvedAt := *s.ResolvedAt
		c.ResolvedAt = &resolvedAt
	}
	return &c
}
