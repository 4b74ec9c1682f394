package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"CycleSentinel/internal/model"
)

// SQLiteRecorder persists cycle history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers do not block the recorder.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cycle_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			btc_price       REAL,
			rsi             REAL,
			pi_cycle_ratio  REAL,
			risk_score      INTEGER,
			risk_level      TEXT,
			altseason_score REAL,
			factors_json    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycle_ts ON cycle_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS sentiment_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			fear_greed    REAL,
			btc_dominance REAL,
			eth_btc_ratio REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentiment_ts ON sentiment_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	factors, err := json.Marshal(rec.Factors)
	if err != nil {
		return fmt.Errorf("marshal factors: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO cycle_snapshots
		(timestamp, btc_price, rsi, pi_cycle_ratio, risk_score, risk_level, altseason_score, factors_json)
		VALUES (?,?,?,?,?,?,?,?)`,
		rec.GeneratedAt.Unix(), rec.BTCPrice,
		nullable(rec.RSI), nullable(rec.PiCycleRatio),
		rec.RiskScore, string(rec.RiskLevel),
		nullable(rec.AltseasonScore), string(factors),
	)
	return err
}

func (r *SQLiteRecorder) RecordSentiment(rec *SentimentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sentiment_history
		(timestamp, fear_greed, btc_dominance, eth_btc_ratio)
		VALUES (?,?,?,?)`,
		rec.FetchedAt.Unix(),
		nullable(rec.FearGreed), nullable(rec.BTCDominance), nullable(rec.ETHBTCRatio),
	)
	return err
}

func (r *SQLiteRecorder) PreviousSentiment() (*SentimentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.db.QueryRow(`SELECT timestamp, fear_greed, btc_dominance, eth_btc_ratio
		FROM sentiment_history ORDER BY timestamp DESC LIMIT 1`)

	var ts int64
	var fg, dom, ratio sql.NullFloat64
	if err := row.Scan(&ts, &fg, &dom, &ratio); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query previous sentiment: %w", err)
	}
	return &SentimentRecord{
		FetchedAt:    time.Unix(ts, 0),
		FearGreed:    fromNull(fg),
		BTCDominance: fromNull(dom),
		ETHBTCRatio:  fromNull(ratio),
	}, nil
}

func (r *SQLiteRecorder) PreviousRisk() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.db.QueryRow(`SELECT risk_score FROM cycle_snapshots ORDER BY timestamp DESC LIMIT 1`)
	var score int
	if err := row.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return -1, nil
		}
		return -1, fmt.Errorf("query previous risk: %w", err)
	}
	return score, nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}

func nullable(m model.Metric) interface{} {
	if !m.Valid {
		return nil
	}
	return m.Value
}

func fromNull(v sql.NullFloat64) model.Metric {
	if !v.Valid {
		return model.None()
	}
	return model.Some(v.Float64)
}
