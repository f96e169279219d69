package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/gosimple/slug"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
)

const snapshotTimeLayout = "20060102T150405Z"

// ObjectStore is the subset of utils.R2Client the archiver needs.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// Archiver copies the join ledger and deposit ledger to object storage.
type Archiver struct {
	Store    ObjectStore
	Joins    repositories.JoinRepository
	Deposits repositories.DepositRepository

	prefix string
	now    func() time.Time
}

func NewArchiver(appName string, store ObjectStore, joins repositories.JoinRepository, deposits repositories.DepositRepository) *Archiver {
	name := slug.Make(appName)
	if name == "" {
		name = "default"
	}
	return &Archiver{
		Store:    store,
		Joins:    joins,
		Deposits: deposits,
		prefix:   path.Join("backups", name),
		now:      time.Now,
	}
}

// Snapshot uploads one timestamped copy of both ledgers and returns its key prefix.
func (a *Archiver) Snapshot(ctx context.Context) (string, error) {
	dir := path.Join(a.prefix, a.now().UTC().Format(snapshotTimeLayout))

	joins, err := a.Joins.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list joins: %w", err)
	}
	if err := a.putJSON(ctx, path.Join(dir, "joins.json"), joins); err != nil {
		return "", err
	}

	deposits, err := a.Deposits.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to list deposits: %w", err)
	}
	if err := a.putJSON(ctx, path.Join(dir, "deposits.json"), deposits); err != nil {
		return "", err
	}

	logger.Info("Snapshot archived",
		"prefix", dir,
		"joins", len(joins),
		"deposits", len(deposits),
	)
	return dir, nil
}

func (a *Archiver) putJSON(ctx context.Context, key string, v interface{}) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return a.Store.PutObject(ctx, key, body, "application/json")
}
