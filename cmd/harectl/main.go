// Hare CLI — операторская утилита диспетчера.
//
// Использование:
//
//	harectl [--amqp-url URL] [--db-url DSN] [--json] <command> [flags]
//
// Команды:
//
//	send      Публикация тестового сообщения с заголовками
//	check     Валидация имени обработчика
//	journal   Просмотр журнала диспетчеризации
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/hare/internal/cli"
	"github.com/shaiso/hare/internal/config"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var amqpURL string
	var dbURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "harectl",
		Short:         "harectl — operator tool for the hare dispatcher",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&amqpURL, "amqp-url", envOr("HARE_AMQP_URL", config.DefaultAMQPURL), "RabbitMQ URL")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", os.Getenv("HARE_DB_URL"), "Postgres DSN for the dispatch journal")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	amqpURLFn := func() string { return amqpURL }
	dbURLFn := func() string { return dbURL }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewSendCmd(amqpURLFn, outputFn),
		cli.NewCheckCmd(outputFn),
		cli.NewJournalCmd(dbURLFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// envOr возвращает значение переменной окружения или default.
func envOr(name, defaultVal string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultVal
}
