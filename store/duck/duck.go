// Package duck keeps the mock service's records in an in-memory duckdb.
package duck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "bankview/entity"
)

var (
	kinds     = []string{nt.Clients, nt.Accounts, nt.Movements} // each loaded from <kind>.ndjson
	fieldRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	timestamp = time.RFC3339
)

type Duck struct {
	db     *sql.DB
	logger nt.Logger
	dir    string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	_, err = db.Exec(`
		CREATE TABLE records (
			kind       VARCHAR NOT NULL,
			id         VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL,
			raw        JSON NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the fixtures directory
func (dk *Duck) Name() string {
	return dk.dir
}

// Load reads clients, accounts and movements fixtures from dir; missing files are skipped
func (dk *Duck) Load(ctx context.Context, dir string) (err error) {

	dk.dir = dir
	for _, kind := range kinds {
		path := filepath.Join(dir, kind+".ndjson")
		_, err = os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
			continue
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to stat %s", path)
			return
		}

		err = loadKind(ctx, dk.db, kind, path)
		if err != nil {
			return
		}
	}

	_, err = dk.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_kind_id ON records(kind, id)")
	err = errors.Wrapf(err, "failed to create index")
	return
}

// Count returns the number of records of a kind matching filter
func (dk *Duck) Count(ctx context.Context, kind string, filter nt.Filter) (count int, err error) {

	where, args, err := whereClause(kind, filter)
	if err != nil {
		return
	}

	err = dk.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records "+where, args...).Scan(&count)
	err = errors.Wrapf(err, "failed to count %s", kind)
	return
}

// Find returns a page of records of a kind, page counted from zero
func (dk *Duck) Find(ctx context.Context, kind string, filter nt.Filter, sort nt.Sort, page, size int) (recs []nt.Record, err error) {

	where, args, err := whereClause(kind, filter)
	if err != nil {
		return
	}

	order, err := orderClause(sort)
	if err != nil {
		return
	}

	if size <= 0 {
		size = 20
	}
	page = max(page, 0)
	if page > math.MaxInt/size {
		err = errors.Errorf("page %d out of range for size %d", page, size)
		return
	}

	query := fmt.Sprintf("SELECT raw::VARCHAR FROM records %s %s LIMIT %d OFFSET %d", where, order, size, page*size)
	rows, err := dk.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", kind)
		return
	}
	defer rows.Close()

	recs = []nt.Record{}
	for rows.Next() {
		var rec nt.Record
		rec, err = scanRecord(rows)
		if err != nil {
			return
		}
		recs = append(recs, rec)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Get returns one record by id
func (dk *Duck) Get(ctx context.Context, kind, id string) (rec nt.Record, err error) {

	row := dk.db.QueryRowContext(ctx, "SELECT raw::VARCHAR FROM records WHERE kind = ? AND id = ?", kind, id)
	rec, err = scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = errors.Wrapf(nt.ErrNotFound, "no %s with id %s", kind, id)
	}
	return
}

// Insert stores a new record with a fresh id and creation time
func (dk *Duck) Insert(ctx context.Context, kind string, rec nt.Record) (stored nt.Record, err error) {

	now := time.Now().UTC()

	stored = copyRecord(rec)
	stored["id"] = uuid.NewString()
	stored["createdAt"] = now.Format(timestamp)
	delete(stored, "updatedAt")

	data, err := json.Marshal(stored)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal %s", kind)
		return
	}

	_, err = dk.db.ExecContext(ctx,
		"INSERT INTO records (kind, id, created_at, raw) VALUES (?, ?, ?, ?::JSON)",
		kind, stored["id"], now, string(data))
	if err != nil {
		err = errors.Wrapf(err, "failed to insert %s", kind)
	}
	return
}

// Replace overwrites a record, keeping its id and creation time
func (dk *Duck) Replace(ctx context.Context, kind, id string, rec nt.Record) (stored nt.Record, err error) {

	existing, err := dk.Get(ctx, kind, id)
	if err != nil {
		return
	}

	stored = copyRecord(rec)
	stored["id"] = id
	stored["updatedAt"] = time.Now().UTC().Format(timestamp)
	if created, ok := existing["createdAt"]; ok {
		stored["createdAt"] = created
	}

	data, err := json.Marshal(stored)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal %s", kind)
		return
	}

	_, err = dk.db.ExecContext(ctx,
		"UPDATE records SET raw = ?::JSON WHERE kind = ? AND id = ?",
		string(data), kind, id)
	if err != nil {
		err = errors.Wrapf(err, "failed to update %s", kind)
	}
	return
}

// Delete removes a record by id
func (dk *Duck) Delete(ctx context.Context, kind, id string) (err error) {

	result, err := dk.db.ExecContext(ctx, "DELETE FROM records WHERE kind = ? AND id = ?", kind, id)
	if err != nil {
		err = errors.Wrapf(err, "failed to delete %s", kind)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err = errors.Wrapf(err, "failed to get rows affected")
		return
	}
	if affected == 0 {
		err = errors.Wrapf(nt.ErrNotFound, "no %s with id %s", kind, id)
	}
	return
}

// unexported

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (rec nt.Record, err error) {

	var raw string
	err = row.Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			err = errors.Wrapf(err, "failed to scan row")
		}
		return
	}

	err = json.Unmarshal([]byte(raw), &rec)
	err = errors.Wrapf(err, "failed to unmarshal raw json")
	return
}

func loadKind(ctx context.Context, db *sql.DB, kind, path string) (err error) {

	// created_at falls back to load order when createdAt is absent
	load := fmt.Sprintf(`
		INSERT INTO records (kind, id, created_at, raw)
		SELECT
			'%s',
			json_extract_string(json_text, '$.id'),
			coalesce(
				try_cast(json_extract_string(json_text, '$.createdAt') AS TIMESTAMP),
				TIMESTAMP '2000-01-01' + to_seconds(ROW_NUMBER() OVER ())
			),
			json_text::JSON
		FROM read_json_objects('%s', format='newline_delimited') AS t(json_text)
	`, kind, strings.ReplaceAll(path, "'", "''"))

	_, err = db.ExecContext(ctx, load)
	err = errors.Wrapf(err, "failed to load %s from %s", kind, path)
	return
}

func whereClause(kind string, filter nt.Filter) (clause string, args []any, err error) {

	expr, args, err := filterExpr(filter)
	if err != nil {
		return
	}

	args = append([]any{kind}, args...)
	clause = "WHERE kind = ?"
	if expr != "" {
		clause += " AND " + expr
	}
	return
}

// filterExpr recursively builds filter expression (without WHERE prefix)
func filterExpr(flt nt.Filter) (expr string, args []any, err error) {

	if flt.Op == nt.And {
		var clauses []string
		for _, child := range flt.Children {
			var childExpr string
			var childArgs []any
			childExpr, childArgs, err = filterExpr(child)
			if err != nil {
				return
			}
			if childExpr != "" {
				clauses = append(clauses, childExpr)
				args = append(args, childArgs...)
			}
		}
		if len(clauses) > 0 {
			expr = "(" + strings.Join(clauses, " AND ") + ")"
		}
		return
	}

	field, err := jsonField(flt.Field)
	if err != nil {
		return
	}
	args = []any{flt.Value}

	switch flt.Op {
	case nt.Eq:
		expr = field + " = ?"
	case nt.Gte:
		expr = field + " >= ?"
	case nt.Lte:
		expr = field + " <= ?"
	case nt.Contains:
		expr = "contains(lower(" + field + "), lower(?))"
	default:
		err = errors.Errorf("unknown filter op %d", flt.Op)
	}
	return
}

func orderClause(sort nt.Sort) (clause string, err error) {

	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	if sort.Field == "" {
		clause = fmt.Sprintf("ORDER BY created_at %s, id", dir)
		return
	}

	field, err := jsonField(sort.Field)
	if err != nil {
		return
	}
	clause = fmt.Sprintf("ORDER BY %s %s, id", field, dir)
	return
}

func jsonField(path string) (field string, err error) {

	if !fieldRe.MatchString(path) {
		err = errors.Errorf("invalid field %q", path)
		return
	}
	field = fmt.Sprintf("json_extract_string(raw, '$.%s')", path)
	return
}

func copyRecord(rec nt.Record) nt.Record {

	out := nt.Record{}
	maps.Copy(out, rec)
	return out
}
