package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"atomictasks/internal/model"
	"atomictasks/internal/repository"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// TaskCreateRequest is the payload for creating a task.
type TaskCreateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedBy   *string    `json:"createdBy"`
	AssignedTo  *string    `json:"assignedTo"`
}

// TaskUpdateRequest is the payload for updating a task. Updates are a full
// replace: the client resends every mutable field, including isCompleted.
type TaskUpdateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedBy   *string    `json:"createdBy"`
	AssignedTo  *string    `json:"assignedTo"`
}

// TaskResponse is the JSON shape of a task. Nullable fields serialize as
// explicit nulls; timestamps are RFC3339 strings.
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
	DueDate     *string `json:"dueDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	CreatedBy   *string `json:"createdBy"`
	AssignedTo  *string `json:"assignedTo"`
}

// FilterValuesResponse lists the label values in use, for filter selectors.
type FilterValuesResponse struct {
	CreatedBy  []string `json:"createdBy"`
	AssignedTo []string `json:"assignedTo"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		CreatedBy:   task.CreatedBy,
		AssignedTo:  task.AssignedTo,
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.RFC3339)
		response.DueDate = &dueDate
	}
	return response
}

// normalizeOptional trims an optional label and maps blank values to null,
// so "  " in a request clears the field the same way omitting it does.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validationError(c *gin.Context, fieldErr *model.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors": gin.H{fieldErr.Field: []string{fieldErr.Message}},
	})
}

// List returns one page of tasks matching the supplied filters
// @Summary      List tasks
// @Description  Filter, sort, and paginate tasks. All parameters are optional.
// @Tags         Tasks
// @Produce      json
// @Param        isCompleted    query  bool    false  "Completion state"
// @Param        dueFrom        query  string  false  "Due date lower bound (date or RFC3339)"
// @Param        dueTo          query  string  false  "Due date upper bound, inclusive of that day"
// @Param        createdBy      query  string  false  "Substring match on createdBy"
// @Param        assignedTo     query  string  false  "Substring match on assignedTo"
// @Param        search         query  string  false  "Substring match on title or description"
// @Param        sortBy         query  string  false  "createdAt (default), dueDate, or title"
// @Param        sortDirection  query  string  false  "asc or desc (default)"
// @Param        page           query  int     false  "1-based page index"
// @Param        pageSize       query  int     false  "Page size, capped at 50"
// @Success      200  {array}  TaskResponse
// @Failure      400  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var query repository.TaskQuery

	if value := c.Query("isCompleted"); value != "" {
		completed, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid isCompleted value"})
			return
		}
		query.IsCompleted = &completed
	}

	var err error
	if query.DueFrom, err = parseTimeParam(c.Query("dueFrom")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueFrom date"})
		return
	}
	if query.DueTo, err = parseTimeParam(c.Query("dueTo")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueTo date"})
		return
	}

	if query.Page, err = parseIntParam(c.Query("page")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}
	if query.PageSize, err = parseIntParam(c.Query("pageSize")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pageSize value"})
		return
	}

	query.CreatedBy = c.Query("createdBy")
	query.AssignedTo = c.Query("assignedTo")
	query.Search = c.Query("search")
	query.SortBy = c.Query("sortBy")
	query.SortDirection = c.Query("sortDirection")

	tasks, err := h.taskRepo.List(c.Request.Context(), query)
	if err != nil {
		log.Printf("failed to list tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = toTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// FilterValues returns the distinct label values currently in use
// @Summary      List filter values
// @Description  Distinct non-empty createdBy and assignedTo values, sorted ascending.
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  FilterValuesResponse
// @Router       /tasks/filter-values [get]
func (h *TaskHandler) FilterValues(c *gin.Context) {
	values, err := h.taskRepo.FilterValues(c.Request.Context())
	if err != nil {
		log.Printf("failed to load filter values: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve filter values"})
		return
	}

	response := FilterValuesResponse{
		CreatedBy:  values.CreatedBy,
		AssignedTo: values.AssignedTo,
	}
	if response.CreatedBy == nil {
		response.CreatedBy = []string{}
	}
	if response.AssignedTo == nil {
		response.AssignedTo = []string{}
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single task
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path  string  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("failed to retrieve task %s: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create creates a new task
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task  body  TaskCreateRequest  true  "Task to create"
// @Success      201  {object}  TaskResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	title, fieldErr := model.ValidateTitle(req.Title)
	if fieldErr != nil {
		validationError(c, fieldErr)
		return
	}

	task := &model.Task{
		Title:       title,
		Description: normalizeOptional(req.Description),
		IsCompleted: false,
		DueDate:     req.DueDate,
		CreatedBy:   normalizeOptional(req.CreatedBy),
		AssignedTo:  normalizeOptional(req.AssignedTo),
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		log.Printf("failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.Header("Location", "/tasks/"+task.ID.String())
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update replaces all mutable fields of a task
// @Summary      Update a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Task ID"
// @Param        task  body  TaskUpdateRequest  true  "Replacement field values"
// @Success      200  {object}  TaskResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	title, fieldErr := model.ValidateTitle(req.Title)
	if fieldErr != nil {
		validationError(c, fieldErr)
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("failed to retrieve task %s: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	task.Title = title
	task.Description = normalizeOptional(req.Description)
	task.IsCompleted = req.IsCompleted
	task.DueDate = req.DueDate
	task.CreatedBy = normalizeOptional(req.CreatedBy)
	task.AssignedTo = normalizeOptional(req.AssignedTo)

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("failed to update task %s: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete removes a task permanently
// @Summary      Delete a task
// @Tags         Tasks
// @Param        id  path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if _, err := h.taskRepo.GetByID(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("failed to retrieve task %s: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("failed to delete task %s: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTimeParam accepts a plain date or a full RFC3339 timestamp.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIntParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
