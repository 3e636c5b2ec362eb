package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/hare/internal/repo"
)

// NewJournalCmd создаёт команду просмотра журнала диспетчеризации.
func NewJournalCmd(dbURLFn func() string, outputFn func() *Output) *cobra.Command {
	var limit int
	var id string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recent dispatch journal records",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			dsn := dbURLFn()
			if dsn == "" {
				return fmt.Errorf("journal requires --db-url or HARE_DB_URL")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			pool, err := repo.NewPool(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			journal := repo.NewJournalRepo(pool)

			// Одна запись по ID
			if id != "" {
				recordID, err := uuid.Parse(id)
				if err != nil {
					return fmt.Errorf("invalid record id %q: %w", id, err)
				}

				rec, err := journal.GetByID(ctx, recordID)
				if errors.Is(err, repo.ErrNotFound) {
					return fmt.Errorf("no journal record with id %s", recordID)
				}
				if err != nil {
					return err
				}

				out.Records([]repo.DispatchRecord{*rec})
				return nil
			}

			records, err := journal.ListRecent(ctx, limit)
			if err != nil {
				return err
			}

			out.Records(records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum records to show")
	cmd.Flags().StringVar(&id, "id", "", "show a single record by id")

	return cmd
}
