package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"atomictasks/internal/model"
)

// FilterValues holds the distinct label values currently in use, for
// populating the client's filter selectors.
type FilterValues struct {
	CreatedBy  []string
	AssignedTo []string
}

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query TaskQuery) ([]model.Task, error)
	FilterValues(ctx context.Context) (*FilterValues, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create assigns the task its identity and timestamps and persists it.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Update refreshes the task's UpdatedAt and persists a full replacement of
// its mutable fields. CreatedAt is written back unchanged. The update is
// keyed on the id explicitly; Save would insert a fresh row when the id no
// longer exists, resurrecting deleted tasks instead of reporting not found.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Select("*").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task permanently by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// List returns one page of tasks matching every supplied filter, ordered by
// the requested sort key. An empty page is a valid result, never an error.
func (r *TaskRepository) List(ctx context.Context, query TaskQuery) ([]model.Task, error) {
	tx := r.db.WithContext(ctx).Model(&model.Task{})

	if query.IsCompleted != nil {
		tx = tx.Where("is_completed = ?", *query.IsCompleted)
	}

	dueFrom, dueBefore := query.dueBounds()
	if dueFrom != nil {
		tx = tx.Where("due_date >= ?", *dueFrom)
	}
	if dueBefore != nil {
		tx = tx.Where("due_date < ?", *dueBefore)
	}

	// NULL labels and descriptions never match a substring filter; LIKE on a
	// NULL column is not true, so no explicit IS NOT NULL guard is needed.
	if term := strings.TrimSpace(query.CreatedBy); term != "" {
		tx = tx.Where("created_by LIKE ?", "%"+term+"%")
	}
	if term := strings.TrimSpace(query.AssignedTo); term != "" {
		tx = tx.Where("assigned_to LIKE ?", "%"+term+"%")
	}
	if term := strings.TrimSpace(query.Search); term != "" {
		pattern := "%" + term + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	offset, limit := query.limits()

	var tasks []model.Task
	result := tx.Order(query.orderClause()).Offset(offset).Limit(limit).Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// FilterValues returns the distinct non-empty createdBy and assignedTo values
// currently in use, each sorted ascending. Recomputed on every call.
func (r *TaskRepository) FilterValues(ctx context.Context) (*FilterValues, error) {
	values := &FilterValues{}

	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("created_by IS NOT NULL AND created_by <> ''").
		Distinct().
		Order("created_by ASC").
		Pluck("created_by", &values.CreatedBy).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Task{}).
		Where("assigned_to IS NOT NULL AND assigned_to <> ''").
		Distinct().
		Order("assigned_to ASC").
		Pluck("assigned_to", &values.AssignedTo).Error
	if err != nil {
		return nil, err
	}

	return values, nil
}
