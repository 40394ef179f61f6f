package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"atomictasks/internal/model"
	"atomictasks/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Task{}))

	return db
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func mustCreate(t *testing.T, repo *repository.TaskRepository, task *model.Task) *model.Task {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func TestTaskRepository_Create_AssignsIdentityAndTimestamps(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	task := mustCreate(t, repo, &model.Task{Title: "Write assessment"})

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskRepository_GetByID_RoundTrip(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	due := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	created := mustCreate(t, repo, &model.Task{
		Title:       "Write assessment",
		Description: strPtr("Implement the task app"),
		DueDate:     &due,
	})

	found, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Write assessment", found.Title)
	assert.Equal(t, "Implement the task app", *found.Description)
	assert.True(t, found.DueDate.Equal(due))

	// A second read without intervening writes returns identical data
	again, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, found, again)
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_Update_RefreshesUpdatedAtOnly(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	task := mustCreate(t, repo, &model.Task{Title: "Write assessment"})
	createdAt := task.CreatedAt
	previousUpdatedAt := task.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	task.IsCompleted = true
	require.NoError(t, repo.Update(context.Background(), task))

	found, err := repo.GetByID(context.Background(), task.ID)
	require.NoError(t, err)

	assert.True(t, found.IsCompleted)
	assert.True(t, found.CreatedAt.Equal(createdAt))
	assert.True(t, found.UpdatedAt.After(previousUpdatedAt))
}

func TestTaskRepository_Update_MissingIDDoesNotInsert(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	ghost := &model.Task{ID: uuid.New(), Title: "Never created"}

	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	// The failed update must not have inserted a row under that id
	_, err = repo.GetByID(context.Background(), ghost.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_Update_DeletedTaskStaysDeleted(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	task := mustCreate(t, repo, &model.Task{Title: "Write assessment"})
	require.NoError(t, repo.Delete(context.Background(), task.ID))

	// A full-replace update racing the delete reports not found rather
	// than resurrecting the record
	task.IsCompleted = true
	assert.ErrorIs(t, repo.Update(context.Background(), task), repository.ErrTaskNotFound)

	_, err := repo.GetByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	task := mustCreate(t, repo, &model.Task{Title: "Write assessment"})

	require.NoError(t, repo.Delete(context.Background(), task.ID))

	_, err := repo.GetByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	// Deleting again reports not found rather than silently succeeding
	assert.ErrorIs(t, repo.Delete(context.Background(), task.ID), repository.ErrTaskNotFound)
}

func TestTaskRepository_List_Pagination(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	for i := 0; i < 15; i++ {
		mustCreate(t, repo, &model.Task{Title: fmt.Sprintf("Task %02d", i)})
	}

	page1, err := repo.List(context.Background(), repository.TaskQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page1, 10)

	page2, err := repo.List(context.Background(), repository.TaskQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	page3, err := repo.List(context.Background(), repository.TaskQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestTaskRepository_List_FiltersAreConjunctive(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, &model.Task{Title: "Ship release", IsCompleted: true})
	mustCreate(t, repo, &model.Task{Title: "Ship hotfix", IsCompleted: false})
	mustCreate(t, repo, &model.Task{Title: "Plan sprint", IsCompleted: true})

	completed, err := repo.List(context.Background(), repository.TaskQuery{IsCompleted: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, completed, 2)
	for _, task := range completed {
		assert.True(t, task.IsCompleted)
	}

	// Adding a search term restricts the completed set further
	tasks, err := repo.List(context.Background(), repository.TaskQuery{
		IsCompleted: boolPtr(true),
		Search:      "Ship",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ship release", tasks[0].Title)
}

func TestTaskRepository_List_SearchMatchesTitleOrDescription(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, &model.Task{Title: "Alpha", Description: strPtr("contains keyword")})
	mustCreate(t, repo, &model.Task{Title: "keyword in title"})
	mustCreate(t, repo, &model.Task{Title: "Gamma"}) // nil description never matches

	tasks, err := repo.List(context.Background(), repository.TaskQuery{Search: "keyword"})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskRepository_List_DueRangeIncludesWholeToDay(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, &model.Task{
		Title:   "Due in the evening",
		DueDate: timePtr(time.Date(2030, 5, 10, 18, 0, 0, 0, time.UTC)),
	})
	mustCreate(t, repo, &model.Task{
		Title:   "Due the next morning",
		DueDate: timePtr(time.Date(2030, 5, 11, 1, 0, 0, 0, time.UTC)),
	})
	mustCreate(t, repo, &model.Task{Title: "No due date"})

	tasks, err := repo.List(context.Background(), repository.TaskQuery{
		DueFrom: timePtr(time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)),
		DueTo:   timePtr(time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Due in the evening", tasks[0].Title)
}

func TestTaskRepository_List_LabelSubstringFilters(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, &model.Task{Title: "One", CreatedBy: strPtr("alice"), AssignedTo: strPtr("bob")})
	mustCreate(t, repo, &model.Task{Title: "Two", CreatedBy: strPtr("alina")})
	mustCreate(t, repo, &model.Task{Title: "Three"})

	tasks, err := repo.List(context.Background(), repository.TaskQuery{CreatedBy: "ali"})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = repo.List(context.Background(), repository.TaskQuery{AssignedTo: "bob"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "One", tasks[0].Title)
}

func TestTaskRepository_List_SortByTitleAscending(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	for _, title := range []string{"cherry", "apple", "banana"} {
		mustCreate(t, repo, &model.Task{Title: title})
	}

	tasks, err := repo.List(context.Background(), repository.TaskQuery{
		SortBy:        "title",
		SortDirection: "asc",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "apple", tasks[0].Title)
	assert.Equal(t, "banana", tasks[1].Title)
	assert.Equal(t, "cherry", tasks[2].Title)
}

func TestTaskRepository_List_DefaultPageSizeApplied(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	for i := 0; i < 12; i++ {
		mustCreate(t, repo, &model.Task{Title: fmt.Sprintf("Task %02d", i)})
	}

	tasks, err := repo.List(context.Background(), repository.TaskQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, repository.DefaultPageSize)
}

func TestTaskRepository_FilterValues(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, &model.Task{Title: "One", CreatedBy: strPtr("bob"), AssignedTo: strPtr("carol")})
	mustCreate(t, repo, &model.Task{Title: "Two", CreatedBy: strPtr("alice"), AssignedTo: strPtr("carol")})
	mustCreate(t, repo, &model.Task{Title: "Three", CreatedBy: strPtr("bob")})
	mustCreate(t, repo, &model.Task{Title: "Four"})

	values, err := repo.FilterValues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, values.CreatedBy)
	assert.Equal(t, []string{"carol"}, values.AssignedTo)
}

func TestTaskRepository_FilterValues_Empty(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	values, err := repo.FilterValues(context.Background())
	require.NoError(t, err)

	assert.Empty(t, values.CreatedBy)
	assert.Empty(t, values.AssignedTo)
}
