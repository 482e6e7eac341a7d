package cache

import "time"

// ParseCacheRow holds the diagnostics collected for one exact source
// content under one dialect, keyed by content hash so identical sources
// across different files share a row. Separate from ExtractionCacheRow
// so a diagnostics-only lookup never forces a symbol re-extraction.
type ParseCacheRow struct {
	Hash        string `gorm:"primaryKey;type:varchar(64)"`
	Dialect     uint8  `gorm:"primaryKey;type:smallint"`
	Diagnostics string `gorm:"type:text"` // JSON-encoded []syntax.Diagnostic
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	HitCount    int64     `gorm:"default:0"`
}

// ExtractionCacheRow holds the serialized ExtractionResult for one exact
// source content under one dialect and file identity — the file identity
// is part of the key because extracted qualified names embed it.
type ExtractionCacheRow struct {
	Hash      string `gorm:"primaryKey;type:varchar(64)"`
	Dialect   uint8  `gorm:"primaryKey;type:smallint"`
	FileID    string `gorm:"primaryKey;type:varchar(255)"`
	Symbols   string `gorm:"type:text"` // JSON-encoded hir.ExtractionResult
	CreatedAt time.Time `gorm:"autoCreateTime"`
	HitCount  int64     `gorm:"default:0"`
}
