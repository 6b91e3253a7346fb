package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/ports"
)

type PostgresUserRepository struct{ DB *sql.DB }

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

func (s *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	if s.DB == nil {
		return domain.User{}, errors.New("postgres user repository: DB is nil")
	}

	query := `
	SELECT id, username, name, password_hash
	FROM users
	WHERE username = $1;
	`
	var u domain.User
	err := s.DB.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("get user %q: %w", username, ports.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %q: %w", username, err)
	}

	return u, nil
}
