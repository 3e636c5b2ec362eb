package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/hare/internal/config"
	"github.com/shaiso/hare/internal/mq"
)

// NewSendCmd создаёт команду публикации тестового сообщения.
func NewSendCmd(amqpURLFn func() string, outputFn func() *Output) *cobra.Command {
	var queue string
	var headers []string
	var body string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Publish a message with headers to the dispatch queue",
		Example: `  harectl send --header type=deploy --header app=myapp
  harectl send --queue deploy --header type=backup --body '{"ignored": true}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			table, err := parseHeaders(headers)
			if err != nil {
				return err
			}

			// CLI не шумит логами транспорта
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			conn, err := mq.Dial(amqpURLFn(), logger)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			if err := mq.EnsureQueue(conn, queue); err != nil {
				return err
			}

			pub := mq.NewPublisher(conn, logger)
			if err := pub.Publish(ctx, queue, table, []byte(body)); err != nil {
				return err
			}

			out.Notice("published to %s with %d header(s)", queue, len(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&queue, "queue", config.DefaultQueue, "queue name")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "message header key=value (repeatable)")
	cmd.Flags().StringVar(&body, "body", "", "message body (opaque to the dispatcher)")

	return cmd
}

// parseHeaders разбирает пары key=value.
func parseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid header %q, expected key=value", p)
		}
		headers[k] = v
	}

	return headers, nil
}
