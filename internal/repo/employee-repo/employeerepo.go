package employeerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const employeeColumns = `id, name, role, telegram_id, login, password_hash, is_active, created_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Role, &emp.TelegramID, &emp.Login, &emp.PasswordHash, &emp.IsActive, &emp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE login = $1
    `
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employee by login", zap.Error(err))
		return nil, err
	}
	return emp, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE id = $1
    `
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return nil, err
	}
	return emp, nil
}

// NamesByIDs returns employee display names keyed by id.
func (r *Repository) NamesByIDs(ctx context.Context, ids []int) (map[int]string, error) {
	query := `
        SELECT id, name
        FROM employees
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get employee names", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	names := make(map[int]string, len(ids))
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			zap.L().Error("can't scan employee name row", zap.Error(err))
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// PlateOperatorChatIDs returns telegram chat ids of active pavilion-2
// operators, the recipients of new-plate-order notifications.
func (r *Repository) PlateOperatorChatIDs(ctx context.Context) ([]int64, error) {
	query := `
        SELECT telegram_id
        FROM employees
        WHERE role = 'ROLE_PLATE_OPERATOR' AND telegram_id IS NOT NULL AND is_active = TRUE
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get plate operator chat ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan chat id row", zap.Error(err))
			return nil, err
		}
		chatIDs = append(chatIDs, id)
	}
	return chatIDs, rows.Err()
}
