package repository

import (
	"context"
	"errors"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillName        string
	SkillCategory    string
	ProficiencyLevel *int
	AIScore          *float64
	XPEarned         *int
	VerifiedAt       *time.Time
	LastUpdated      *time.Time
}

type SkillEndorsement struct {
	ID                  uuid.UUID
	SkillID             uuid.UUID
	EndorserID          uuid.UUID
	EndorsementMessage  *string
	BlockchainSignature *string
	CreatedAt           time.Time
}

type SkillRepository interface {
	Create(ctx context.Context, s Skill) (Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	CreateEndorsement(ctx context.Context, e SkillEndorsement) (SkillEndorsement, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, user_id, skill_name, skill_category, proficiency_level,
	ai_score, xp_earned, verified_at, last_updated`

func (r *PostgresSkillRepository) Create(ctx context.Context, s Skill) (Skill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, user_id, skill_name, skill_category, proficiency_level, ai_score, xp_earned)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.SkillName, s.SkillCategory, s.ProficiencyLevel, s.AIScore, s.XPEarned,
	)
	if err != nil {
		return Skill{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY skill_name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SkillName, &s.SkillCategory, &s.ProficiencyLevel,
			&s.AIScore, &s.XPEarned, &s.VerifiedAt, &s.LastUpdated,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateEndorsement(ctx context.Context, e SkillEndorsement) (SkillEndorsement, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skill_endorsements (id, skill_id, endorser_id, endorsement_message, blockchain_signature)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, skill_id, endorser_id, endorsement_message, blockchain_signature, created_at`,
		e.ID, e.SkillID, e.EndorserID, e.EndorsementMessage, e.BlockchainSignature,
	)

	var out SkillEndorsement
	err := row.Scan(&out.ID, &out.SkillID, &out.EndorserID, &out.EndorsementMessage, &out.BlockchainSignature, &out.CreatedAt)
	if err != nil {
		return SkillEndorsement{}, err
	}
	return out, nil
}

func scanSkill(row database.Row) (Skill, error) {
	var s Skill
	err := row.Scan(
		&s.ID, &s.UserID, &s.SkillName, &s.SkillCategory, &s.ProficiencyLevel,
		&s.AIScore, &s.XPEarned, &s.VerifiedAt, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}
