package i18n

import "golang.org/x/text/language"

// Seeder progress messages.
const (
	KeySeedStart       Key = "seed.start"
	KeyLevels          Key = "seed.levels"
	KeySubjects        Key = "seed.subjects"
	KeyBooks           Key = "seed.books"
	KeyBookSubjects    Key = "seed.book_subjects"
	KeyContentChecked  Key = "seed.content_checked"
	KeyTopicSeeded     Key = "seed.topic_seeded"
	KeyDryRun          Key = "seed.dry_run"
	KeyCacheCleared    Key = "seed.cache_cleared"
	KeyCacheFailed     Key = "seed.cache_failed"
	KeySeedCompleted   Key = "seed.completed"
	KeyMigrationsDone  Key = "migrate.completed"
	KeyMigrationsStart Key = "migrate.start"
)

// Keys lists every message the default catalog must translate.
var Keys = []Key{
	KeySeedStart, KeyLevels, KeySubjects, KeyBooks, KeyBookSubjects,
	KeyContentChecked, KeyTopicSeeded, KeyDryRun,
	KeyCacheCleared, KeyCacheFailed, KeySeedCompleted,
	KeyMigrationsStart, KeyMigrationsDone,
}

var english = map[Key]string{
	KeySeedStart:       "🌱 Starting database seed",
	KeyLevels:          "📊 Levels upserted",
	KeySubjects:        "📚 Subjects created",
	KeyBooks:           "📖 Books created",
	KeyBookSubjects:    "🔗 Books linked to subjects",
	KeyContentChecked:  "🔍 Topic content validated",
	KeyTopicSeeded:     "📝 Topic seeded",
	KeyDryRun:          "🧪 Dry run, nothing was written",
	KeyCacheCleared:    "🧹 Cache invalidated",
	KeyCacheFailed:     "⚠️ Cache invalidation failed",
	KeySeedCompleted:   "✅ Seed completed",
	KeyMigrationsStart: "🛠️ Applying migrations",
	KeyMigrationsDone:  "✅ Migrations applied",
}

var ukrainian = map[Key]string{
	KeySeedStart:       "🌱 Початок наповнення бази даних",
	KeyLevels:          "📊 Рівні складності збережено",
	KeySubjects:        "📚 Предмети створено",
	KeyBooks:           "📖 Книги створено",
	KeyBookSubjects:    "🔗 Книги прив'язано до предметів",
	KeyContentChecked:  "🔍 Вміст тем перевірено",
	KeyTopicSeeded:     "📝 Тему збережено",
	KeyDryRun:          "🧪 Пробний запуск, нічого не записано",
	KeyCacheCleared:    "🧹 Кеш очищено",
	KeyCacheFailed:     "⚠️ Не вдалося очистити кеш",
	KeySeedCompleted:   "✅ Наповнення завершено",
	KeyMigrationsStart: "🛠️ Застосування міграцій",
	KeyMigrationsDone:  "✅ Міграції застосовано",
}

// Default returns the catalog of built-in messages. English is the fallback.
func Default() *Catalog {
	return NewCatalog(
		[]language.Tag{language.English, language.Ukrainian},
		map[language.Tag]map[Key]string{
			language.English:   english,
			language.Ukrainian: ukrainian,
		},
	)
}
