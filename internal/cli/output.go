package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shaiso/hare/internal/dispatch"
	"github.com/shaiso/hare/internal/repo"
)

// Output выводит результаты harectl.
//
// Два режима: таблица (по умолчанию) и JSON (--json). Данные идут в
// stdout, служебные сообщения — в stderr, чтобы не ломать pipe:
// harectl journal --json | jq .
type Output struct {
	jsonMode bool
	w        io.Writer
	errW     io.Writer
}

// NewOutput создаёт Output.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
	}
}

// Records выводит записи журнала диспетчеризации, новые первыми.
func (o *Output) Records(records []repo.DispatchRecord) {
	if o.jsonMode {
		o.writeJSON(records)
		return
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		exit := ""
		if r.ExitCode != nil {
			exit = strconv.Itoa(*r.ExitCode)
		}
		rows[i] = []string{
			r.CreatedAt.Format(time.RFC3339),
			r.Outcome,
			r.Handler,
			exit,
			r.Error,
		}
	}

	o.table([]string{"CREATED", "OUTCOME", "HANDLER", "EXIT", "ERROR"}, rows)
}

// Resolution выводит результат проверки имени обработчика.
// exists — есть ли скрипт на диске (подсказка оператору; демон
// проверяет существование только при запуске).
func (o *Output) Resolution(res dispatch.Resolution, exists bool) {
	if o.jsonMode {
		o.writeJSON(map[string]any{
			"handler": res.Handler,
			"script":  res.ScriptPath,
			"exists":  exists,
		})
		return
	}

	existsCol := "no"
	if exists {
		existsCol = "yes"
	}

	o.table(
		[]string{"HANDLER", "SCRIPT", "EXISTS"},
		[][]string{{res.Handler, res.ScriptPath, existsCol}},
	)
}

// Notice выводит служебное сообщение в stderr.
func (o *Output) Notice(format string, args ...any) {
	fmt.Fprintf(o.errW, format+"\n", args...)
}

// table печатает выровненную таблицу с заголовком.
func (o *Output) table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

func (o *Output) writeJSON(v any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
