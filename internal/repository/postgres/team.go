package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/repository"
)

// querier общий набор методов pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	row, err := toTeamRow(team)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO teams (
			team_name, team_uid, captain, tournament_phase, tournament_id, entry_fee,
			tournament_vote, exit_vote, distribution, can_join_tournament, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.Exec(ctx, query,
		team.Key.Name, int64(team.Key.UID), team.Captain,
		row.phase, row.tournamentID, row.entryFee,
		row.vote, row.exitVote, row.distribution,
		team.CanJoinTournament, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrTeamExists
		}
		return err
	}

	if err := insertMembers(ctx, tx, team); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByKey получает команду со всеми участниками
func (r *TeamRepository) GetByKey(ctx context.Context, key domain.TeamKey) (*domain.Team, error) {
	return loadTeam(ctx, r.db, key, false)
}

// Update загружает команду с блокировкой строки (SELECT ... FOR UPDATE), применяет fn
// и сохраняет команду, переводы и выплаты в одной транзакции
func (r *TeamRepository) Update(ctx context.Context, key domain.TeamKey, fn repository.UpdateFunc) (*domain.Team, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	team, err := loadTeam(ctx, tx, key, true)
	if err != nil {
		return nil, err
	}

	if err := fn(ctx, team, &txTreasury{tx: tx}); err != nil {
		return nil, err
	}

	if team.Disbanded {
		if _, err := tx.Exec(ctx, `DELETE FROM teams WHERE team_name = $1 AND team_uid = $2`, key.Name, int64(key.UID)); err != nil {
			return nil, err
		}
	} else if err := saveTeam(ctx, tx, team); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return team, nil
}

// ListClaims возвращает выплаты команды в порядке проведения
func (r *TeamRepository) ListClaims(ctx context.Context, key domain.TeamKey) ([]*domain.RewardClaim, error) {
	query := `
		SELECT claim_id, beneficiary, claimed_by, amount, claimed_at
		FROM reward_claims
		WHERE team_name = $1 AND team_uid = $2
		ORDER BY claimed_at, claim_id
	`

	rows, err := r.db.Query(ctx, query, key.Name, int64(key.UID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []*domain.RewardClaim{}
	for rows.Next() {
		claim := &domain.RewardClaim{Team: key}
		if err := rows.Scan(&claim.ID, &claim.Beneficiary, &claim.ClaimedBy, &claim.Amount, &claim.ClaimedAt); err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

// teamRow содержит сериализованные поля команды
type teamRow struct {
	phase        string
	tournamentID string
	entryFee     int64
	vote         []byte
	exitVote     []byte
	distribution []byte
}

func toTeamRow(team *domain.Team) (*teamRow, error) {
	row := &teamRow{
		phase:        string(team.Tournament.Phase),
		tournamentID: team.Tournament.ID,
		entryFee:     team.Tournament.EntryFee,
	}
	if row.phase == "" {
		row.phase = string(domain.TournamentNone)
	}

	var err error
	if team.Tournament.Vote != nil {
		if row.vote, err = json.Marshal(team.Tournament.Vote); err != nil {
			return nil, err
		}
	}
	if team.Tournament.ExitVote != nil {
		if row.exitVote, err = json.Marshal(team.Tournament.ExitVote); err != nil {
			return nil, err
		}
	}
	if team.Distribution != nil {
		if row.distribution, err = json.Marshal(team.Distribution); err != nil {
			return nil, err
		}
	}
	return row, nil
}

func loadTeam(ctx context.Context, q querier, key domain.TeamKey, forUpdate bool) (*domain.Team, error) {
	query := `
		SELECT captain, tournament_phase, tournament_id, entry_fee,
		       tournament_vote, exit_vote, distribution, can_join_tournament, created_at, updated_at
		FROM teams
		WHERE team_name = $1 AND team_uid = $2
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	team := &domain.Team{Key: key, Members: []string{}}
	var phase string
	var vote, exitVote, distribution []byte

	err := q.QueryRow(ctx, query, key.Name, int64(key.UID)).Scan(
		&team.Captain,
		&phase,
		&team.Tournament.ID,
		&team.Tournament.EntryFee,
		&vote,
		&exitVote,
		&distribution,
		&team.CanJoinTournament,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	team.Tournament.Phase = domain.TournamentPhase(phase)

	if vote != nil {
		if err := json.Unmarshal(vote, &team.Tournament.Vote); err != nil {
			return nil, err
		}
	}
	if exitVote != nil {
		if err := json.Unmarshal(exitVote, &team.Tournament.ExitVote); err != nil {
			return nil, err
		}
	}
	if distribution != nil {
		if err := json.Unmarshal(distribution, &team.Distribution); err != nil {
			return nil, err
		}
	}

	rows, err := q.Query(ctx, `
		SELECT user_id
		FROM team_members
		WHERE team_name = $1 AND team_uid = $2
		ORDER BY position
	`, key.Name, int64(key.UID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		team.Members = append(team.Members, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return team, nil
}

func saveTeam(ctx context.Context, tx pgx.Tx, team *domain.Team) error {
	row, err := toTeamRow(team)
	if err != nil {
		return err
	}

	query := `
		UPDATE teams
		SET captain = $3,
		    tournament_phase = $4,
		    tournament_id = $5,
		    entry_fee = $6,
		    tournament_vote = $7,
		    exit_vote = $8,
		    distribution = $9,
		    can_join_tournament = $10,
		    updated_at = $11
		WHERE team_name = $1 AND team_uid = $2
	`

	result, err := tx.Exec(ctx, query,
		team.Key.Name, int64(team.Key.UID), team.Captain,
		row.phase, row.tournamentID, row.entryFee,
		row.vote, row.exitVote, row.distribution,
		team.CanJoinTournament, team.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}

	// Состав перезаписывается целиком: порядок участников значим
	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_name = $1 AND team_uid = $2`,
		team.Key.Name, int64(team.Key.UID)); err != nil {
		return err
	}

	return insertMembers(ctx, tx, team)
}

func insertMembers(ctx context.Context, tx pgx.Tx, team *domain.Team) error {
	if len(team.Members) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, userID := range team.Members {
		batch.Queue(`
			INSERT INTO team_members (team_name, team_uid, position, user_id)
			VALUES ($1, $2, $3, $4)
		`, team.Key.Name, int64(team.Key.UID), i, userID)
	}

	return tx.SendBatch(ctx, batch).Close()
}
