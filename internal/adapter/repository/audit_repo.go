package repository

import (
	"context"

	"resumely/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// AuditRepo appends to the audit log. Writes are best-effort: a failed audit
// insert is logged and never fails the request that triggered it.
type AuditRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewAuditRepo(pool *pgxpool.Pool, log *zap.Logger) *AuditRepo {
	return &AuditRepo{pool: pool, log: log}
}

func (r *AuditRepo) Record(ctx context.Context, e domain.AuditEntry) {
	if r.pool == nil {
		return
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO audit_log (user_id, action, details, ip_address, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		e.UserID, e.Action, e.Details, e.IPAddress, e.CreatedAt)
	if err != nil && r.log != nil {
		r.log.Warn("audit write failed", zap.String("action", e.Action), zap.Error(err))
	}
}
