package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS perfumes (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  concentration TEXT NOT NULL,
  fragrance_family TEXT NOT NULL,
  top_notes_json TEXT NOT NULL DEFAULT '[]',
  middle_notes_json TEXT NOT NULL DEFAULT '[]',
  base_notes_json TEXT NOT NULL DEFAULT '[]',
  season_json TEXT NOT NULL DEFAULT '[]',
  occasion_json TEXT NOT NULL DEFAULT '[]',
  longevity REAL NOT NULL,
  sillage REAL NOT NULL,
  personal_rating REAL NOT NULL,
  price REAL,
  description TEXT NOT NULL DEFAULT '',
  purchase_date TEXT,
  image TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_perfumes_family ON perfumes(fragrance_family);`); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_perfumes_name ON perfumes(name);`); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) CountPerfumes(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM perfumes`).Scan(&n)
	return n, err
}

const perfumeColumns = `id, name, brand, concentration, fragrance_family,
top_notes_json, middle_notes_json, base_notes_json, season_json, occasion_json,
longevity, sillage, personal_rating, price, description, purchase_date, image`

const insertPerfume = `INSERT INTO perfumes (` + perfumeColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// UpsertMany inserts a seed dataset without duplicating by id.
func (s *SQLiteStore) UpsertMany(ctx context.Context, items []domain.Perfume) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, strings.Replace(insertPerfume, "INSERT", "INSERT OR IGNORE", 1))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range items {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		args, err := perfumeArgs(p)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// CreatePerfume stores p, assigning a new id when p.ID is empty.
func (s *SQLiteStore) CreatePerfume(ctx context.Context, p domain.Perfume) (domain.Perfume, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	args, err := perfumeArgs(p)
	if err != nil {
		return p, err
	}
	_, err = s.db.ExecContext(ctx, insertPerfume, args...)
	return p, err
}

// UpdatePerfume replaces every field of the perfume with id p.ID.
func (s *SQLiteStore) UpdatePerfume(ctx context.Context, p domain.Perfume) (bool, error) {
	args, err := perfumeArgs(p)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE perfumes SET
  name = ?, brand = ?, concentration = ?, fragrance_family = ?,
  top_notes_json = ?, middle_notes_json = ?, base_notes_json = ?, season_json = ?, occasion_json = ?,
  longevity = ?, sillage = ?, personal_rating = ?, price = ?, description = ?, purchase_date = ?, image = ?
WHERE id = ?
`, append(args[1:], p.ID)...)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) DeletePerfume(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM perfumes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) GetPerfume(ctx context.Context, id string) (domain.Perfume, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+perfumeColumns+` FROM perfumes WHERE id = ?`, id)
	p, err := scanPerfume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Perfume{}, false, nil
	}
	if err != nil {
		return domain.Perfume{}, false, err
	}
	return p, true, nil
}

// AllPerfumes returns the whole collection in insertion order.
func (s *SQLiteStore) AllPerfumes(ctx context.Context) ([]domain.Perfume, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+perfumeColumns+` FROM perfumes ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Perfume{}
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListFilter narrows and orders ListPerfumes results. Zero values disable a
// filter.
type ListFilter struct {
	Family string
	Season string
	Query  string
	Sort   string
	Limit  int
	Offset int
}

func (s *SQLiteStore) ListPerfumes(ctx context.Context, f ListFilter) ([]domain.Perfume, int, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	where := make([]string, 0, 3)
	args := make([]any, 0, 6)

	if strings.TrimSpace(f.Family) != "" {
		where = append(where, "fragrance_family = ?")
		args = append(args, f.Family)
	}
	if strings.TrimSpace(f.Season) != "" {
		where = append(where, `season_json LIKE '%"' || ? || '"%'`)
		args = append(args, f.Season)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "(LOWER(name) LIKE '%' || LOWER(?) || '%' OR LOWER(brand) LIKE '%' || LOWER(?) || '%')")
		args = append(args, q, q)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	orderSQL := "ORDER BY rowid"
	switch f.Sort {
	case "name":
		orderSQL = "ORDER BY name COLLATE NOCASE, rowid"
	case "brand":
		orderSQL = "ORDER BY brand COLLATE NOCASE, name COLLATE NOCASE"
	case "rating_desc":
		orderSQL = "ORDER BY personal_rating DESC, rowid"
	case "price_asc":
		orderSQL = "ORDER BY price IS NULL, price ASC"
	case "price_desc":
		orderSQL = "ORDER BY price IS NULL, price DESC"
	case "recent":
		orderSQL = "ORDER BY purchase_date IS NULL, purchase_date DESC"
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM perfumes "+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsSQL := "SELECT " + perfumeColumns + " FROM perfumes\n" + whereSQL + "\n" + orderSQL + "\nLIMIT ? OFFSET ?"
	rowsArgs := append(append([]any{}, args...), f.Limit, f.Offset)

	rows, err := s.db.QueryContext(ctx, rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.Perfume{}
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func perfumeArgs(p domain.Perfume) ([]any, error) {
	lists := []any{p.TopNotes, p.MiddleNotes, p.BaseNotes, p.Season, p.Occasion}
	encoded := make([]any, len(lists))
	for i, l := range lists {
		b, err := json.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("encode perfume %s: %w", p.ID, err)
		}
		if string(b) == "null" {
			b = []byte("[]")
		}
		encoded[i] = string(b)
	}

	var price any
	if p.Price != nil {
		price = *p.Price
	}
	var purchased any
	if p.PurchaseDate != nil {
		purchased = p.PurchaseDate.UTC().Format(time.RFC3339)
	}

	args := []any{p.ID, p.Name, p.Brand, string(p.Concentration), string(p.FragranceFamily)}
	args = append(args, encoded...)
	return append(args,
		p.Longevity, p.Sillage, p.PersonalRating, price, p.Description, purchased, p.Image,
	), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerfume(r rowScanner) (domain.Perfume, error) {
	var p domain.Perfume
	var topJSON, middleJSON, baseJSON, seasonJSON, occasionJSON string
	var price sql.NullFloat64
	var purchased sql.NullString

	if err := r.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Concentration, &p.FragranceFamily,
		&topJSON, &middleJSON, &baseJSON, &seasonJSON, &occasionJSON,
		&p.Longevity, &p.Sillage, &p.PersonalRating, &price, &p.Description, &purchased, &p.Image,
	); err != nil {
		return p, err
	}

	_ = json.Unmarshal([]byte(topJSON), &p.TopNotes)
	_ = json.Unmarshal([]byte(middleJSON), &p.MiddleNotes)
	_ = json.Unmarshal([]byte(baseJSON), &p.BaseNotes)
	_ = json.Unmarshal([]byte(seasonJSON), &p.Season)
	_ = json.Unmarshal([]byte(occasionJSON), &p.Occasion)

	if price.Valid {
		v := price.Float64
		p.Price = &v
	}
	if purchased.Valid {
		if t, err := time.Parse(time.RFC3339, purchased.String); err == nil {
			p.PurchaseDate = &t
		}
	}
	return p, nil
}
