package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/devconnect/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
	retention     = 30 * 24 * time.Hour
)

// DBHandler batches ERROR+ records into the system_logs table.
type DBHandler struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	h := &DBHandler{
		db:     db,
		buffer: make([]models.SystemLog, 0, batchSize),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *DBHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *DBHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.SystemLog, 0, batchSize)
	h.mu.Unlock()

	if err := h.db.CreateInBatches(batch, batchSize).Error; err != nil {
		slog.Error("failed to flush system logs", "error", err, "count", len(batch))
	}
}

// Stop flushes the remaining buffer and halts the loop.
func (h *DBHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			if f, ok := a.Value.Any().(float64); ok {
				entry.LatencyMs = int(math.Round(f))
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= batchSize
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }

func (h *DBHandler) WithGroup(name string) slog.Handler { return h }

// StartRetention deletes persisted log rows older than the retention window,
// once a day, until done is closed.
func StartRetention(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log retention sweep failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log retention sweep completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
