package dispatch

// OutcomeKind — вид результата диспетчеризации.
type OutcomeKind string

// Виды результатов.
const (
	// OutcomeSkipped — обработчик не найден или имя невалидно.
	OutcomeSkipped OutcomeKind = "skipped"

	// OutcomeInvoked — скрипт запущен и завершился (с любым кодом).
	OutcomeInvoked OutcomeKind = "invoked"

	// OutcomeError — скрипт не удалось запустить.
	OutcomeError OutcomeKind = "error"
)

// Outcome — результат диспетчеризации одного сообщения.
// Создаётся ровно один раз на сообщение и потребляется логированием,
// журналом и политикой подтверждения.
type Outcome struct {
	Kind OutcomeKind

	// Handler — имя обработчика (пустое для Skipped).
	Handler string

	// ScriptPath — путь запущенного скрипта (пустой для Skipped).
	ScriptPath string

	// ExitCode — код завершения скрипта (для Invoked).
	ExitCode int

	// Err — ошибка запуска (для Error).
	Err error
}

// Skipped — сообщение без валидного обработчика.
func Skipped() Outcome {
	return Outcome{Kind: OutcomeSkipped}
}

// Invoked — скрипт завершился с кодом code.
func Invoked(handler, scriptPath string, code int) Outcome {
	return Outcome{
		Kind:       OutcomeInvoked,
		Handler:    handler,
		ScriptPath: scriptPath,
		ExitCode:   code,
	}
}

// InvocationError — скрипт не удалось запустить.
func InvocationError(handler, scriptPath string, err error) Outcome {
	return Outcome{
		Kind:       OutcomeError,
		Handler:    handler,
		ScriptPath: scriptPath,
		Err:        err,
	}
}

// ShouldAck возвращает решение о подтверждении сообщения для данного
// результата.
//
// Политика fire-and-forget: подтверждаем всегда. Передоставка не
// исправит ни отсутствующий обработчик, ни сломанный скрипт, а
// неподтверждённые сообщения копились бы в очереди без пользы.
// Функция существует, чтобы это решение было явным контрактом,
// а не неявным свойством потока управления.
func ShouldAck(Outcome) bool {
	return true
}
