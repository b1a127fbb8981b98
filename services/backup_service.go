// services/backup_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"vendora-backend/storage"

	"github.com/robfig/cron/v3"
)

// BackupService writes nightly snapshots of the full backup envelope to a
// local directory, so there is always a recent export even when the owner
// never triggers one by hand.
type BackupService struct {
	repos *storage.Repositories
	dir   string
}

func NewBackupService(repos *storage.Repositories) *BackupService {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}
	return &BackupService{repos: repos, dir: dir}
}

func (s *BackupService) StartScheduler() {
	c := cron.New()

	// Run every night at 2 AM
	c.AddFunc("0 2 * * *", func() {
		if err := s.WriteSnapshot(context.Background()); err != nil {
			log.Printf("Nightly backup failed: %v", err)
		}
	})

	c.Start()
	log.Println("Backup scheduler started")
}

// WriteSnapshot exports everything and writes it under the same file name
// the app uses for manual exports.
func (s *BackupService) WriteSnapshot(ctx context.Context) error {
	data, err := s.repos.ExportAll(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	name := fmt.Sprintf("vendora_backup_%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	log.Printf("Backup snapshot written to %s", path)
	return nil
}
