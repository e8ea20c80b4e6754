package repositories

import "context"

// Repository aggregates every collection repository backed by the blob store.
type Repository interface {
	Users() UserRepository
	Tasks() TaskRepository
	Logs() ActivityLogRepository
	Settings() SettingsRepository
	Session() SessionRepository
	Emails() EmailRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with the configured store
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
