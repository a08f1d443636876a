package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userColumns = `id, firstName, lastName, email, phone, address,
	       passwordHash, role, isActive, createdAt, updatedAt`

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Address,
		&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MySQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM Users WHERE email = ?`, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}
	return user, nil
}

func (r *MySQLUserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM Users WHERE id = ?`, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}
	return user, nil
}

func (r *MySQLUserRepository) Insert(ctx context.Context, user domain.User) (int, error) {
	query := `
		INSERT INTO Users (firstName, lastName, email, phone, address, passwordHash, role, isActive)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Phone, user.Address,
		user.PasswordHash, user.Role, user.IsActive,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted user id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLUserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE Users SET passwordHash = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	return nil
}

func (r *MySQLUserRepository) UpdateActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE Users SET isActive = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("updating user active flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	return nil
}

// ListByRoles returns a page of users with any of the given roles plus the
// total count for the filter.
func (r *MySQLUserRepository) ListByRoles(ctx context.Context, roles []string, limit, offset int) ([]domain.User, int, error) {
	if len(roles) == 0 {
		return nil, 0, nil
	}

	placeholders := make([]string, len(roles))
	args := make([]interface{}, 0, len(roles)+2)
	for i, role := range roles {
		placeholders[i] = "?"
		args = append(args, role)
	}

	countQuery := fmt.Sprintf(
		`SELECT COUNT(*) FROM Users WHERE role IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Users
		WHERE role IN (%s)
		ORDER BY id
		LIMIT ? OFFSET ?`,
		userColumns, strings.Join(placeholders, ", "),
	)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, total, nil
}
