// Package cache memoizes query.Parse diagnostics and query.ExtractSymbols
// results in an embedded SQLite database, so a long-lived host never
// re-extracts a file whose content hasn't changed. Parsing itself is
// always redone; only the record of its diagnostics is kept.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/termfx/sysml-core/hir"
	"github.com/termfx/sysml-core/query"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// Store is a memoizing front end over query.Parse/query.ExtractSymbols,
// backed by a gorm/sqlite database.
type Store struct {
	db *gorm.DB
}

// Open connects to (and migrates) the sqlite database at dsn. A dsn of
// ":memory:" opens a private in-memory database, the usual choice for
// short-lived CLI invocations that still want the dedup benefit within a
// single run over many files.
func Open(dsn string, debug bool) (*Store, error) {
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("cache: failed to create database directory: %w", err)
			}
		}
	}

	config := &gorm.Config{}
	if debug {
		config.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to connect: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("cache: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate runs the cache's table migrations against an already-open
// connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ParseCacheRow{}, &ExtractionCacheRow{})
}

func hashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// GetOrParse parses source under dialect and reports whether a row for
// this exact content and dialect was already recorded (bumping its hit
// count), or records the fresh parse's diagnostics on a miss. It always
// re-parses the tree itself — a green tree is cheap to rebuild and
// awkward to serialize faithfully — and the returned ParsedFile is always
// the fresh parse; stored diagnostics are not read back.
func (s *Store) GetOrParse(dialect token.Dialect, source string) (*syntax.ParsedFile, bool, error) {
	pf := query.Parse(dialect, source)
	hash := hashSource(source)

	var row ParseCacheRow
	err := s.db.Where("hash = ? AND dialect = ?", hash, uint8(dialect)).First(&row).Error
	if err == nil {
		s.db.Model(&row).Update("hit_count", row.HitCount+1)
		return pf, true, nil
	}
	if err != gorm.ErrRecordNotFound {
		return pf, false, fmt.Errorf("cache: parse lookup failed: %w", err)
	}

	encoded, err := json.Marshal(pf.Diagnostics)
	if err != nil {
		return pf, false, fmt.Errorf("cache: failed to encode diagnostics: %w", err)
	}
	row = ParseCacheRow{Hash: hash, Dialect: uint8(dialect), Diagnostics: string(encoded)}
	if err := s.db.Create(&row).Error; err != nil {
		return pf, false, fmt.Errorf("cache: failed to store diagnostics: %w", err)
	}
	return pf, false, nil
}

// GetOrExtract returns the previously extracted symbols for this exact
// (fileID, dialect, source) triple, or extracts fresh and records the
// result on a miss.
func (s *Store) GetOrExtract(fileID string, dialect token.Dialect, source string) (hir.ExtractionResult, bool, error) {
	hash := hashSource(source)

	var row ExtractionCacheRow
	err := s.db.Where("hash = ? AND dialect = ? AND file_id = ?", hash, uint8(dialect), fileID).First(&row).Error
	if err == nil {
		var res hir.ExtractionResult
		if decodeErr := json.Unmarshal([]byte(row.Symbols), &res); decodeErr == nil {
			s.db.Model(&row).Update("hit_count", row.HitCount+1)
			return res, true, nil
		}
	} else if err != gorm.ErrRecordNotFound {
		return hir.ExtractionResult{}, false, fmt.Errorf("cache: extraction lookup failed: %w", err)
	}

	pf := query.Parse(dialect, source)
	res := query.ExtractSymbols(fileID, pf)

	encoded, encErr := json.Marshal(res)
	if encErr != nil {
		return res, false, fmt.Errorf("cache: failed to encode extraction result: %w", encErr)
	}
	row = ExtractionCacheRow{Hash: hash, Dialect: uint8(dialect), FileID: fileID, Symbols: string(encoded)}
	if err := s.db.Create(&row).Error; err != nil {
		return res, false, fmt.Errorf("cache: failed to store extraction result: %w", err)
	}
	return res, false, nil
}

// Stats reports row counts for both cache tables, mirroring the
// hit/miss-style accounting the rest of this codebase's ambient stack
// favors for cache instrumentation.
func (s *Store) Stats() (parseRows, extractionRows int64, err error) {
	if err = s.db.Model(&ParseCacheRow{}).Count(&parseRows).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&ExtractionCacheRow{}).Count(&extractionRows).Error; err != nil {
		return 0, 0, err
	}
	return parseRows, extractionRows, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
