package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
)

// Invoker запускает внешнюю программу обработчика.
//
// Реализации: ExecInvoker (production, os/exec) и тестовый двойник
// в dispatcher_test.go.
//
// Invoke блокируется до завершения процесса и возвращает его код
// завершения. Ненулевой код — нормальный результат, не error; error
// возвращается только если процесс не удалось запустить.
type Invoker interface {
	Invoke(ctx context.Context, scriptPath string, overlay map[string]string) (int, error)
}

// ExecInvoker — production-реализация поверх os/exec.
//
// Скрипт запускается без аргументов. Окружение — окружение текущего
// процесса плюс overlay; overlay перекрывает одноимённые переменные.
// stdout/stderr скрипта наследуются от диспетчера.
type ExecInvoker struct{}

// Invoke запускает скрипт и ждёт его завершения.
func (ExecInvoker) Invoke(ctx context.Context, scriptPath string, overlay map[string]string) (int, error) {
	cmd := exec.CommandContext(ctx, scriptPath)

	// При дублировании ключей в Env действует последнее значение,
	// поэтому overlay добавляется после текущего окружения.
	env := os.Environ()
	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		env = append(env, k+"="+overlay[k])
	}
	cmd.Env = env

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// Процесс запустился, но завершился с ненулевым кодом
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	// Скрипт не найден, нет прав, не хватило ресурсов
	return 0, fmt.Errorf("%w: %s: %v", ErrSpawn, scriptPath, err)
}
