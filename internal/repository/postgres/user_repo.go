package postgres

import (
	"context"
	"errors"
	"fmt"

	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/models/user"
	repo "kanbanTracker/internal/repository"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func (s *Storage) CreateUser(ctx context.Context, u *user.User) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := s.builder.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "role").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repo.ErrAlreadyExists
		}
		logger.Error("Repository: Не удалось создать пользователя", err)
		return fmt.Errorf("создание пользователя: %w", err)
	}

	query, args, err = s.builder.
		Insert("settings").
		Columns("user_id", "language", "theme").
		Values(u.ID, u.Setting.Language, u.Setting.Theme).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		logger.Error("Repository: Не удалось создать настройки", err)
		return fmt.Errorf("создание настроек: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getUser(ctx, squirrel.Eq{"u.email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.getUser(ctx, squirrel.Eq{"u.id": id})
}

func (s *Storage) getUser(ctx context.Context, where squirrel.Eq) (*user.User, error) {
	query, args, err := s.builder.
		Select("u.id", "u.name", "u.email", "u.password_hash", "u.role", "s.language", "s.theme").
		From("users u").
		Join("settings s ON s.user_id = u.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса: %w", err)
	}

	u := &user.User{}
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Setting.Language,
		&u.Setting.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить пользователя", err)
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}
	return u, nil
}

func (s *Storage) UpdateUser(ctx context.Context, u *user.User) error {
	query, args, err := s.builder.
		Update("users").
		Set("name", u.Name).
		Set("email", u.Email).
		Set("password_hash", u.PasswordHash).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repo.ErrAlreadyExists
		}
		logger.Error("Repository: Не удалось обновить пользователя", err)
		return fmt.Errorf("обновление пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *Storage) UpdateSetting(ctx context.Context, userID uuid.UUID, setting user.Setting) error {
	query, args, err := s.builder.
		Update("settings").
		Set("language", setting.Language).
		Set("theme", setting.Theme).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось обновить настройки", err)
		return fmt.Errorf("обновление настроек: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
