package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/chiro-hub/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateUserQuery builds a conditional insert. The unique indexes on
// login and email turn a duplicate into zero returned rows.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("login", "email", "password_hash").
		Values(user.Login, user.Email, user.PasswordHash).
		Suffix("ON CONFLICT DO NOTHING RETURNING id, login, email, created_at").
		ToSql()
}

func buildTouchLoginQuery(login string, at time.Time) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("last_login_at", at).
		Set("last_seen_at", at).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// buildProbeUsersQuery reads at most one row so the probe stays cheap on
// large tables.
func buildProbeUsersQuery() (string, []any, error) {
	return psql.
		Select("count(*)").
		FromSelect(sq.Select("1").From(models.User{}.TableName()).Limit(1), "probe").
		ToSql()
}

func buildTouchLastSeenQuery(login string, at time.Time) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("last_seen_at", at).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildClearAuditContextQuery() (string, []any, error) {
	return psql.Select().Column("clear_audit_context()").ToSql()
}

func buildSetAuditContextQuery(ac models.AuditContext) (string, []any, error) {
	return psql.
		Select().
		Column(sq.Expr("set_audit_context(?, ?, ?, ?, ?, ?, ?, ?)",
			ac.UserID,
			ac.Login,
			ac.Email,
			ac.Chiropractor,
			ac.Source,
			ac.SessionID,
			ac.IPAddress,
			ac.UserAgent,
		)).
		ToSql()
}
