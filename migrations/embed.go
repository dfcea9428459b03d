// Пакет migrations — SQL-миграции goose, встроенные в бинарь.
package migrations

import "embed"

// FS — файлы миграций (корень FS = каталог migrations).
//
//go:embed *.sql
var FS embed.FS
