package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ProjectStore = (*Store)(nil)

// Store is a SQLite-backed project store. The full project, sources
// and artifact included, is serialized to a JSON blob; id, name and
// timestamps are kept as indexed columns for lookup and ordering.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.pluginsmith/data/projects.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pluginsmith", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "projects.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate applies all pending .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save inserts or replaces a project.
func (s *Store) Save(ctx context.Context, project *domain.Project) error {
	if project == nil || project.ID == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(projectRecordFrom(project))
	if err != nil {
		return fmt.Errorf("marshalling project: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, output_type, created_at, updated_at, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			output_type = excluded.output_type,
			updated_at = excluded.updated_at,
			data = excluded.data
	`, project.ID, project.Name, string(project.OutputType),
		project.CreatedAt.UTC(), project.LastModifiedAt.UTC(), string(data))
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.getWhere(ctx, "id = ?", id)
}

// GetByName retrieves a project by its slug name.
func (s *Store) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.getWhere(ctx, "name = ?", name)
}

func (s *Store) getWhere(ctx context.Context, where string, arg any) (*domain.Project, error) {
	var data string
	row := s.db.QueryRowContext(ctx, "SELECT data FROM projects WHERE "+where, arg)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return unmarshalProject(data)
}

// List returns all stored projects, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM projects ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		project, err := unmarshalProject(data)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

// Delete removes a project by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// projectRecord is the JSON shape stored in the data column. Kept
// separate from the domain type so schema evolution stays inside this
// adapter.
type projectRecord struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	DisplayName      string                     `json:"displayName"`
	Description      string                     `json:"description"`
	Version          string                     `json:"version"`
	Author           domain.AuthorInfo          `json:"author"`
	OutputType       string                     `json:"outputType"`
	Sources          []domain.SourceDocument    `json:"sources,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
	LastModifiedAt   time.Time                  `json:"lastModifiedAt"`
	PluginConfig     domain.PluginConfiguration `json:"pluginConfig"`
	GenerationStatus string                     `json:"generationStatus"`
	Artifact         *domain.GeneratedArtifact  `json:"artifact,omitempty"`
}

func projectRecordFrom(project *domain.Project) projectRecord {
	return projectRecord{
		ID:               project.ID,
		Name:             project.Name,
		DisplayName:      project.DisplayName,
		Description:      project.Description,
		Version:          project.Version,
		Author:           project.Author,
		OutputType:       string(project.OutputType),
		Sources:          project.Sources,
		CreatedAt:        project.CreatedAt,
		LastModifiedAt:   project.LastModifiedAt,
		PluginConfig:     project.PluginConfig,
		GenerationStatus: string(project.GenerationStatus),
		Artifact:         project.Artifact,
	}
}

func unmarshalProject(data string) (*domain.Project, error) {
	var record projectRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("unmarshalling project: %w", err)
	}
	return &domain.Project{
		ID:               record.ID,
		Name:             record.Name,
		DisplayName:      record.DisplayName,
		Description:      record.Description,
		Version:          record.Version,
		Author:           record.Author,
		OutputType:       domain.OutputType(record.OutputType),
		Sources:          record.Sources,
		CreatedAt:        record.CreatedAt,
		LastModifiedAt:   record.LastModifiedAt,
		PluginConfig:     record.PluginConfig,
		GenerationStatus: domain.GenerationStatus(record.GenerationStatus),
		Artifact:         record.Artifact,
	}, nil
}
