package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads workbook tables from a PostgreSQL database, one SQL
// table per workbook table. SQL result order is not inherently stable, so
// every table must carry an integer "position" column preserving sheet row
// order; it is consumed for ordering and excluded from the cells.
type PostgresSource struct {
	pool *pgxpool.Pool
	url  string
}

// NewPostgresSource establishes a connection pool to the database.
func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{pool: pool, url: databaseURL}, nil
}

// Close closes the connection pool.
func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ReadTable reads every row of one table ordered by its position column.
// NULL cells become empty strings; non-string cells are stringified.
func (s *PostgresSource) ReadTable(ctx context.Context, name string) (*Table, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY position`, pgx.Identifier{name}.Sanitize())
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, &Error{
			Location: "postgres",
			Table:    name,
			Message:  "failed to query table",
			Cause:    err,
		}
	}
	defer rows.Close()

	var header []string
	for _, fd := range rows.FieldDescriptions() {
		header = append(header, fd.Name)
	}

	table := &Table{Name: name}
	for _, col := range header {
		if col != "position" {
			table.Header = append(table.Header, col)
		}
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, &Error{
				Location: "postgres",
				Table:    name,
				Message:  "failed to read row values",
				Cause:    err,
			}
		}

		row := make(Row, len(table.Header))
		for i, col := range header {
			if col == "position" {
				continue
			}
			if i < len(values) && values[i] != nil {
				row[col] = fmt.Sprint(values[i])
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, &Error{
			Location: "postgres",
			Table:    name,
			Message:  "failed while iterating rows",
			Cause:    err,
		}
	}

	return table, nil
}
