// Package repo — доступ к Postgres для журнала диспетчеризации.
//
// Журнал опционален: он включается переменной HARE_DB_URL и хранит
// по одной строке на обработанное сообщение. Ожидаемая схема:
//
//	CREATE TABLE dispatches (
//	    id          uuid PRIMARY KEY,
//	    outcome     text NOT NULL,        -- skipped | invoked | error
//	    handler     text,
//	    script_path text,
//	    exit_code   int,
//	    error       text,
//	    created_at  timestamptz NOT NULL
//	);
//	CREATE INDEX dispatches_created_at_idx ON dispatches (created_at);
//
// Ошибки журнала не влияют на подтверждение сообщений: диспетчер
// логирует их и продолжает работу.
package repo
