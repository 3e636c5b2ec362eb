package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser — парсер cron-выражений (стандартные 5 полей).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Janitor периодически чистит журнал диспетчеризации.
//
// Расписание задаётся cron-выражением; записи старше retention
// удаляются. Janitor работает только когда журнал включён.
type Janitor struct {
	journal   *JournalRepo
	schedule  cron.Schedule
	retention time.Duration
	logger    *slog.Logger
}

// NewJanitor создаёт Janitor.
// scheduleExpr — cron-выражение (например "0 3 * * *"),
// retentionDays — сколько дней хранить записи.
func NewJanitor(journal *JournalRepo, scheduleExpr string, retentionDays int, logger *slog.Logger) (*Janitor, error) {
	schedule, err := cronParser.Parse(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("parse prune schedule %q: %w", scheduleExpr, err)
	}

	return &Janitor{
		journal:   journal,
		schedule:  schedule,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
	}, nil
}

// Run выполняет цикл чистки до отмены контекста.
// Запускается в отдельной горутине.
func (j *Janitor) Run(ctx context.Context) {
	for {
		next := j.schedule.Next(time.Now())
		j.logger.Debug("next journal prune scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		j.prune(ctx)
	}
}

// prune выполняет одну чистку.
func (j *Janitor) prune(ctx context.Context) {
	before := time.Now().Add(-j.retention)

	deleted, err := j.journal.PruneOlderThan(ctx, before)
	if err != nil {
		j.logger.Error("journal prune failed", "error", err)
		return
	}

	j.logger.Info("journal pruned", "deleted", deleted, "before", before)
}
