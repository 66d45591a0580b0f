package repository

import (
	"context"
	"errors"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	ID              uuid.UUID
	Username        *string
	FullName        *string
	Bio             *string
	AvatarURL       *string
	GithubUsername  *string
	TotalXP         int
	ReputationScore int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProfileUpdate struct {
	Username       *string
	FullName       *string
	Bio            *string
	AvatarURL      *string
	GithubUsername *string
}

type LeaderboardRow struct {
	ID       uuid.UUID
	Username *string
	FullName *string
	TotalXP  int
}

type ProfileRepository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	Update(ctx context.Context, id uuid.UUID, in ProfileUpdate) (Profile, error)
	IncrementTotalXP(ctx context.Context, id uuid.UUID, amount int) error
	ListTopByXP(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, username, full_name, bio, avatar_url, github_username,
	COALESCE(total_xp, 0), COALESCE(reputation_score, 0), created_at, updated_at`

func (r *PostgresProfileRepository) Create(ctx context.Context, p Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, username, full_name, total_xp, reputation_score)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Username, p.FullName, p.TotalXP, p.ReputationScore,
	)
	return err
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Update(ctx context.Context, id uuid.UUID, in ProfileUpdate) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE profiles SET
			username        = COALESCE($2, username),
			full_name       = COALESCE($3, full_name),
			bio             = COALESCE($4, bio),
			avatar_url      = COALESCE($5, avatar_url),
			github_username = COALESCE($6, github_username),
			updated_at      = NOW()
		 WHERE id = $1
		 RETURNING `+profileColumns,
		id, in.Username, in.FullName, in.Bio, in.AvatarURL, in.GithubUsername,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) IncrementTotalXP(ctx context.Context, id uuid.UUID, amount int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE profiles SET total_xp = COALESCE(total_xp, 0) + $2, updated_at = NOW() WHERE id = $1`,
		id, amount,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) ListTopByXP(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, full_name, COALESCE(total_xp, 0)
		 FROM profiles
		 ORDER BY total_xp DESC NULLS LAST, created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0)
	for rows.Next() {
		var lr LeaderboardRow
		if err := rows.Scan(&lr.ID, &lr.Username, &lr.FullName, &lr.TotalXP); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Username, &p.FullName, &p.Bio, &p.AvatarURL, &p.GithubUsername,
		&p.TotalXP, &p.ReputationScore, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
