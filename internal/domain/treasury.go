package domain

import "time"

// RewardClaim представляет выплату из казны команды
type RewardClaim struct {
	ID          string    `json:"claim_id"`
	Team        TeamKey   `json:"team"`
	Beneficiary string    `json:"beneficiary"`
	ClaimedBy   string    `json:"claimed_by"`
	Amount      int64     `json:"amount"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

// MaxClaimable возвращает сумму, которую получатель еще может запросить по одобренной доле.
// pool задает призовой фонд, если он еще не зафиксирован первой выплатой.
func (d *Distribution) MaxClaimable(beneficiary string, pool int64) (int64, bool) {
	pct, ok := d.ShareOf(beneficiary)
	if !ok {
		return 0, false
	}
	if d.PoolFixed {
		pool = d.PrizePool
	}
	return shareOf(pool, pct) - d.Claimed[beneficiary], true
}

// shareOf возвращает floor(pool * pct / 100) без переполнения int64
func shareOf(pool int64, pct int) int64 {
	p := int64(pct)
	return pool/100*p + pool%100*p/100
}

// AuthorizeClaim проверяет выплату награды.
// Запросить может сам получатель или капитан; сумма ограничена одобренной долей
// от призового фонда, который фиксируется балансом казны при первой выплате.
func (t *Team) AuthorizeClaim(caller, beneficiary string, amount, treasuryBalance int64) error {
	if caller != beneficiary && !t.IsCaptain(caller) {
		return ErrClaimNotAuthorized
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !t.VotingResult() {
		return ErrProposalNotApproved
	}

	remaining, ok := t.Distribution.MaxClaimable(beneficiary, treasuryBalance)
	if !ok {
		return ErrMemberNotInTeam
	}
	if amount > remaining {
		return ErrClaimExceedsShare
	}
	return nil
}

// RecordClaim фиксирует призовой фонд (при первой выплате) и учитывает выплату
func (t *Team) RecordClaim(beneficiary string, amount, treasuryBalance int64) {
	d := t.Distribution
	if !d.PoolFixed {
		d.PrizePool = treasuryBalance
		d.PoolFixed = true
	}
	if d.Claimed == nil {
		d.Claimed = map[string]int64{}
	}
	d.Claimed[beneficiary] += amount
}
