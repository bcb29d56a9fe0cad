package database

// Connection pool
const (
	DefaultMinConnections = 2

	// ApplicationName tags our sessions in pg_stat_activity unless the
	// connection string already names one
	ApplicationName     = "yumvalues"
	runtimeParamAppName = "application_name"
)

// SQLite
const (
	sqliteDriver    = "sqlite"
	sqliteDSNFormat = "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_foreign_keys=on"
)

// Migration directories inside the embedded filesystem
const (
	postgresMigrationsDir = "migrations/postgres"
	sqliteMigrationsDir   = "migrations/sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToOpenLocal         = "failed to open local database"
	ErrMsgFailedToCreateMigrator    = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations   = "failed to apply migrations"
	ErrMsgFailedToRollbackMigration = "failed to roll back migration"
	ErrMsgFailedToReadStatus        = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgOpenedLocalDatabase             = "Opened local database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationRolledBack             = "Migration rolled back"
)
