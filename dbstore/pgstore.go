package dbstore

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/wayming/jsonconv/jclogger"
)

const createConversionsTable = `
CREATE TABLE IF NOT EXISTS jsonconv_conversions (
	id varchar(64) PRIMARY KEY,
	table_name varchar(255) NOT NULL,
	format varchar(8) NOT NULL,
	payload text NOT NULL,
	record_count bigint NOT NULL,
	status varchar(16) NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);`

type PGStore struct {
	db *sql.DB
}

func NewPGStore() *PGStore {
	return &PGStore{db: nil}
}

func (s *PGStore) Connect(host string, port string, user string, password string, dbname string) error {
	connectionString := "host=" + host + " port=" + port +
		" user=" + user + " password=" + password +
		" dbname=" + dbname + " sslmode=disable"

	var err error
	if s.db, err = sql.Open("postgres", connectionString); err != nil {
		return errors.New("Failed to open database " + dbname + " with user " + user + ". Error: " + err.Error())
	}
	if err = s.db.Ping(); err != nil {
		return errors.New("Failed to connect to database " + dbname + " with user " + user + ". Error: " + err.Error())
	}
	jclogger.JCLoggerInstance.Printf("Connected to database %s as %s", dbname, user)
	return nil
}

func (s *PGStore) Disconnect() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *PGStore) EnsureSchema() error {
	if _, err := s.db.Exec(createConversionsTable); err != nil {
		return errors.New("Failed to create conversions table. Error: " + err.Error())
	}
	return nil
}

func (s *PGStore) Save(conv *Conversion) error {
	_, err := s.db.Exec(
		`INSERT INTO jsonconv_conversions (id, table_name, format, payload, record_count, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		conv.ID, conv.TableName, conv.Format, conv.Payload, conv.RecordCount, conv.Status)
	if err != nil {
		return errors.New("Failed to save conversion " + conv.ID + ". Error: " + err.Error())
	}
	jclogger.JCLoggerInstance.Printf("Saved conversion %s (%d records, %s)", conv.ID, conv.RecordCount, conv.Status)
	return nil
}

func (s *PGStore) Get(id string) (*Conversion, error) {
	var conv Conversion
	err := s.db.QueryRow(
		`SELECT id, table_name, format, payload, record_count, status, created_at
		 FROM jsonconv_conversions WHERE id = $1`, id).
		Scan(&conv.ID, &conv.TableName, &conv.Format, &conv.Payload,
			&conv.RecordCount, &conv.Status, &conv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.New("Failed to load conversion " + id + ". Error: " + err.Error())
	}
	return &conv, nil
}

func (s *PGStore) UpdateStatus(id string, status string) error {
	res, err := s.db.Exec(
		`UPDATE jsonconv_conversions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return errors.New("Failed to update conversion " + id + ". Error: " + err.Error())
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	jclogger.JCLoggerInstance.Printf("Conversion %s is now %s", id, status)
	return nil
}

func (s *PGStore) Recent(limit int) ([]*Conversion, error) {
	rows, err := s.db.Query(
		`SELECT id, table_name, format, payload, record_count, status, created_at
		 FROM jsonconv_conversions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, errors.New("Failed to list conversions. Error: " + err.Error())
	}
	defer rows.Close()

	var out []*Conversion
	for rows.Next() {
		var conv Conversion
		if err := rows.Scan(&conv.ID, &conv.TableName, &conv.Format, &conv.Payload,
			&conv.RecordCount, &conv.Status, &conv.CreatedAt); err != nil {
			return nil, errors.New("Failed to scan conversion row. Error: " + err.Error())
		}
		out = append(out, &conv)
	}
	return out, rows.Err()
}
