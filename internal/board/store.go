// Package board holds the client-side state of the task board: the cached
// task collection, the form draft and whether the form is shown.
//
// Remote operations are returned as tea.Cmd continuations. They never touch
// the Store; their result Msg is applied with Store.Apply, which is the only
// place remote results change state.
package board

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todoboard/internal/domain"
)

const logCategory = "board"

// Options configures a Store.
type Options struct {
	DeleteTarget domain.DeleteTarget // Empty means domain.DeleteTargetRow
}

// ViewState is a snapshot of the Store handed to the rendering surface.
type ViewState struct {
	Tasks       []domain.Task
	Draft       domain.TaskDraft
	FormVisible bool
}

// Store owns the task collection, the draft and the form visibility flag.
// It is not safe for concurrent use; bubbletea's Update loop serializes access.
type Store struct {
	service      domain.TaskService
	logger       domain.Logger
	tasks        []domain.Task
	draft        domain.TaskDraft
	deleteTarget domain.DeleteTarget
	formVisible  bool
}

// NewStore creates a Store backed by service. Diagnostics go to logger.
func NewStore(service domain.TaskService, logger domain.Logger, opts Options) *Store {
	target := opts.DeleteTarget
	if target == "" {
		target = domain.DeleteTargetRow
	}
	return &Store{
		service:      service,
		logger:       logger,
		tasks:        []domain.Task{},
		deleteTarget: target,
	}
}

// View returns a snapshot of the current state.
func (s *Store) View() ViewState {
	draft := s.draft
	if draft.EditTarget != nil {
		target := *draft.EditTarget
		draft.EditTarget = &target
	}
	return ViewState{
		Tasks:       append([]domain.Task{}, s.tasks...),
		Draft:       draft,
		FormVisible: s.formVisible,
	}
}

// DeleteTarget returns the configured delete target.
func (s *Store) DeleteTarget() domain.DeleteTarget {
	return s.deleteTarget
}

// LoadAll returns a command that fetches the full collection.
func (s *Store) LoadAll() tea.Cmd {
	service := s.service
	return func() tea.Msg {
		tasks, err := service.List(context.Background())
		if err != nil {
			return MsgRemoteFailed{Op: "list", Err: err}
		}
		return MsgTasksLoaded{Tasks: tasks}
	}
}

// BeginCreate opens an empty form for a new task.
func (s *Store) BeginCreate() {
	s.draft = domain.TaskDraft{}
	s.formVisible = true
}

// BeginEdit loads the task with the given id into the form.
// An unknown id is reported and leaves the state untouched.
func (s *Store) BeginEdit(id string) error {
	task, ok := domain.FindTask(s.tasks, id)
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
		s.logger.Error(logCategory, "edit: "+err.Error())
		return err
	}
	s.draft = domain.DraftFromTask(task)
	s.formVisible = true
	return nil
}

// ToggleForm flips form visibility and always clears the draft.
func (s *Store) ToggleForm() {
	s.formVisible = !s.formVisible
	s.draft = domain.TaskDraft{}
}

// CancelForm closes the form and clears the draft.
func (s *Store) CancelForm() {
	s.formVisible = false
	s.draft = domain.TaskDraft{}
}

// SetHeading sets the draft heading.
func (s *Store) SetHeading(v string) {
	s.draft.Heading = v
}

// SetDescription sets the draft description.
func (s *Store) SetDescription(v string) {
	s.draft.Description = v
}

// SetStatus sets the draft status.
func (s *Store) SetStatus(v string) {
	s.draft.Status = v
}

// Submit returns a command that sends the draft: an update when a task is
// loaded into the form, a create otherwise. The id and payload are captured
// now, so later draft edits do not affect the request.
func (s *Store) Submit() tea.Cmd {
	service := s.service
	payload := s.draft.Payload()

	if s.draft.IsEditing() {
		id := s.draft.TargetID()
		return func() tea.Msg {
			task, err := service.Update(context.Background(), id, payload)
			if err != nil {
				return MsgRemoteFailed{Op: "update", Err: err}
			}
			return MsgTaskUpdated{Task: task}
		}
	}

	return func() tea.Msg {
		task, err := service.Create(context.Background(), payload)
		if err != nil {
			return MsgRemoteFailed{Op: "create", Err: err}
		}
		return MsgTaskCreated{Task: task}
	}
}

// Delete returns a command that deletes a task. With the row target the
// request is sent for id; with the draft target it is sent for the task
// loaded into the form, and fails with domain.ErrNoEditTarget when there is
// none. On success the task matching id is dropped from the collection.
func (s *Store) Delete(id string) (tea.Cmd, error) {
	target := id
	if s.deleteTarget == domain.DeleteTargetDraft {
		if !s.draft.IsEditing() {
			s.logger.Error(logCategory, "delete: "+domain.ErrNoEditTarget.Error())
			return nil, domain.ErrNoEditTarget
		}
		target = s.draft.TargetID()
	}

	service := s.service
	return func() tea.Msg {
		if err := service.Delete(context.Background(), target); err != nil {
			return MsgRemoteFailed{Op: "delete", Err: err}
		}
		return MsgTaskDeleted{ID: id, TargetID: target}
	}, nil
}

// Apply folds a command result into the state and returns any follow-up
// command. Created and updated tasks trigger a full reload.
func (s *Store) Apply(msg Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MsgTasksLoaded:
		tasks := msg.Tasks
		if tasks == nil {
			tasks = []domain.Task{}
		}
		s.tasks = append([]domain.Task{}, tasks...)
		s.logger.Debug(logCategory, fmt.Sprintf("loaded %d tasks", len(s.tasks)))
		return nil

	case MsgTaskCreated:
		s.logger.Info(logCategory, fmt.Sprintf("task created: %s", msg.Task.ID))
		s.draft = domain.TaskDraft{}
		return s.LoadAll()

	case MsgTaskUpdated:
		s.logger.Info(logCategory, fmt.Sprintf("task updated: %s", msg.Task.ID))
		s.draft = domain.TaskDraft{}
		return s.LoadAll()

	case MsgTaskDeleted:
		s.logger.Info(logCategory, fmt.Sprintf("task deleted: %s", msg.TargetID))
		s.tasks = domain.RemoveTask(s.tasks, msg.ID)
		return nil

	case MsgRemoteFailed:
		s.logger.Error(logCategory, fmt.Sprintf("%s failed: %v", msg.Op, msg.Err))
		return nil
	}
	return nil
}
