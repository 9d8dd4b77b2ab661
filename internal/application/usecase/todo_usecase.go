package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TodoUseCase casos de uso CRUD para tareas.
type TodoUseCase struct {
	repo repository.TodoRepository
}

// NewTodoUseCase construye el caso de uso.
func NewTodoUseCase(repo repository.TodoRepository) *TodoUseCase {
	return &TodoUseCase{repo: repo}
}

// Create crea una tarea. IsDone nace en false.
func (uc *TodoUseCase) Create(userID string, in dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	todo := &entity.Todo{
		ID:        uuid.New().String(),
		UserID:    userID,
		Task:      in.Task,
		IsDone:    false,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(todo); err != nil {
		return nil, err
	}
	return toTodoResponse(todo), nil
}

// List lista las tareas del usuario.
func (uc *TodoUseCase) List(userID string) ([]dto.TodoResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TodoResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTodoResponse(t))
	}
	return items, nil
}

// Update actualiza una tarea (merge parcial).
func (uc *TodoUseCase) Update(userID, id string, in dto.UpdateTodoRequest) (*dto.TodoResponse, error) {
	todo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Task != nil {
		todo.Task = *in.Task
	}
	if in.IsDone != nil {
		todo.IsDone = *in.IsDone
	}
	if err := uc.repo.Update(todo); err != nil {
		return nil, err
	}
	return toTodoResponse(todo), nil
}

// ToggleDone invierte el estado de la tarea.
func (uc *TodoUseCase) ToggleDone(userID, id string) (*dto.TodoResponse, error) {
	todo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.UserID != userID {
		return nil, domain.ErrNotFound
	}
	todo.IsDone = !todo.IsDone
	if err := uc.repo.Update(todo); err != nil {
		return nil, err
	}
	return toTodoResponse(todo), nil
}

// Delete elimina una tarea del usuario.
func (uc *TodoUseCase) Delete(userID, id string) error {
	todo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if todo == nil || todo.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTodoResponse(t *entity.Todo) *dto.TodoResponse {
	if t == nil {
		return nil
	}
	return &dto.TodoResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Task:      t.Task,
		IsDone:    t.IsDone,
		CreatedAt: t.CreatedAt,
	}
}
