package repositories

import (
	"context"
	"database/sql"

	"turf-booking-service/internal/module/member/models/entity"
	"turf-booking-service/internal/pkg/database"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindMemberByEmail(ctx context.Context, email string) (*entity.Member, error)
	FindTakenIdentities(ctx context.Context, email, phone, nid string) ([]string, error)
	LastMemberID(ctx context.Context) (string, error)
	CreateMember(ctx context.Context, member entity.Member) error
	RecordLogin(ctx context.Context, pmaID string) error
	RecordLogout(ctx context.Context, pmaID string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func (r *repositories) FindMemberByEmail(ctx context.Context, email string) (*entity.Member, error) {
	query := `SELECT pma_id, first_name, last_name, phone, dob, nid, email, password, type, status,
		terms_accepted, login_count, last_login, created_at
		FROM pma_member_info WHERE lower(email) = lower($1)`

	var member entity.Member
	err := r.db.GetContext(ctx, &member, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find member by email", err)
		return nil, errors.InternalServerError("error find member")
	}
	return &member, nil
}

// FindTakenIdentities names which of email, phone and nid already belong to a member.
func (r *repositories) FindTakenIdentities(ctx context.Context, email, phone, nid string) ([]string, error) {
	query := `SELECT field FROM (
		SELECT 'email' AS field FROM pma_member_info WHERE lower(email) = lower($1)
		UNION SELECT 'phone' FROM pma_member_info WHERE phone = $2
		UNION SELECT 'nid' FROM pma_member_info WHERE nid = $3
	) taken ORDER BY field`

	taken := []string{}
	if err := r.db.SelectContext(ctx, &taken, query, email, phone, nid); err != nil {
		r.log.Error(ctx, "error check member duplicates", err)
		return nil, errors.InternalServerError("error check member duplicates")
	}
	return taken, nil
}

func (r *repositories) LastMemberID(ctx context.Context) (string, error) {
	query := `SELECT pma_id FROM pma_member_info
		WHERE pma_id ~ '^M[0-9]+PMA$'
		ORDER BY CAST(substring(pma_id FROM '^M([0-9]+)PMA$') AS INTEGER) DESC
		LIMIT 1`

	var pmaID string
	err := r.db.GetContext(ctx, &pmaID, query)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.log.Error(ctx, "error find last member id", err)
		return "", errors.InternalServerError("error find last member id")
	}
	return pmaID, nil
}

func (r *repositories) CreateMember(ctx context.Context, member entity.Member) error {
	query := `INSERT INTO pma_member_info (pma_id, first_name, last_name, phone, dob, nid, email, password,
		type, status, terms_accepted)
		VALUES (:pma_id, :first_name, :last_name, :phone, :dob, :nid, :email, :password,
		:type, :status, :terms_accepted)`

	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, member); err != nil {
			if database.IsDuplicateKey(database.Classify(err)) {
				return errors.Conflict("member already registered")
			}
			r.log.Error(ctx, "error insert member", err, member.PmaID)
			return errors.InternalServerError("error create member")
		}

		_, err := tx.ExecContext(ctx, `INSERT INTO pma_notification_details (id, title, status, date)
			VALUES ($1, $2, 'Unread', NOW())`, member.PmaID, "New member registration: "+member.PmaID)
		if err != nil {
			r.log.Error(ctx, "error insert member notification", err, member.PmaID)
			return errors.InternalServerError("error create member")
		}
		return nil
	})
}

func (r *repositories) RecordLogin(ctx context.Context, pmaID string) error {
	query := `UPDATE pma_member_info SET login_status = 'ACTIVE', last_login = NOW(), login_count = login_count + 1
		WHERE pma_id = $1`

	if _, err := r.db.ExecContext(ctx, query, pmaID); err != nil {
		r.log.Error(ctx, "error record login", err, pmaID)
		return errors.InternalServerError("error record login")
	}
	return nil
}

func (r *repositories) RecordLogout(ctx context.Context, pmaID string) error {
	query := `UPDATE pma_member_info SET login_status = 'IDLE', last_logout = NOW() WHERE pma_id = $1`

	if _, err := r.db.ExecContext(ctx, query, pmaID); err != nil {
		r.log.Error(ctx, "error record logout", err, pmaID)
		return errors.InternalServerError("error record logout")
	}
	return nil
}
