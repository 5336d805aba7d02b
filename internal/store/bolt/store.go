// Package bolt persists the appointment collection as a single JSON blob in
// a local bbolt key-value file.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"clinibook/internal/domain"
	"clinibook/internal/store"
)

const (
	bucketName      = "clinibook"
	appointmentsKey = "appointments"
)

type Store struct {
	db  *bolt.DB
	log *slog.Logger
}

// Open opens (creating if needed) the bbolt file at path and ensures the
// bucket exists. The file is locked for the lifetime of the store, so a
// second process opening the same path blocks until Close.
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) ([]domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var appts []domain.Appointment
	err := s.db.View(func(tx *bolt.Tx) error {
		appts = s.decode(tx.Bucket([]byte(bucketName)).Get([]byte(appointmentsKey)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	return appts, nil
}

func (s *Store) Save(ctx context.Context, appts []domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return put(tx, appts)
	})
	if err != nil {
		return fmt.Errorf("save appointments: %w", err)
	}
	return nil
}

// Update runs fn inside a single bbolt read-write transaction, so the
// load-mutate-save sequence cannot interleave with any other writer.
func (s *Store) Update(ctx context.Context, fn store.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		current := s.decode(tx.Bucket([]byte(bucketName)).Get([]byte(appointmentsKey)))
		next, err := fn(current)
		if err != nil {
			return err
		}
		if err := put(tx, next); err != nil {
			return fmt.Errorf("save appointments: %w", err)
		}
		return nil
	})
}

// decode turns the stored blob into a collection. A missing key means the
// store was never written and yields the seed collection; an undecodable
// blob is treated the same way, logged rather than propagated.
func (s *Store) decode(raw []byte) []domain.Appointment {
	if raw == nil {
		return store.Seed()
	}
	var appts []domain.Appointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		s.log.Warn("persisted appointments undecodable, falling back to seed data",
			slog.Any("err", err))
		return store.Seed()
	}
	return appts
}

func put(tx *bolt.Tx, appts []domain.Appointment) error {
	if appts == nil {
		appts = []domain.Appointment{}
	}
	raw, err := json.Marshal(appts)
	if err != nil {
		return err
	}
	return tx.Bucket([]byte(bucketName)).Put([]byte(appointmentsKey), raw)
}
