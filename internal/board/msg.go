package board

import "github.com/runoshun/todoboard/internal/domain"

// Msg is the sealed interface for results of remote commands.
// Every tea.Cmd returned by the Store produces one Msg, which must be
// handed back to Store.Apply.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the full task list has been fetched.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a create request succeeded.
type MsgTaskCreated struct {
	Task domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when an update request succeeded.
type MsgTaskUpdated struct {
	Task domain.Task
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when a delete request succeeded.
// ID is the task the user asked to delete; TargetID is the id the request
// was sent for. They differ only with the draft delete target.
type MsgTaskDeleted struct {
	ID       string
	TargetID string
}

func (MsgTaskDeleted) sealed() {}

// MsgRemoteFailed is sent when a remote call failed.
type MsgRemoteFailed struct {
	Err error
	Op  string // list, create, update, delete
}

func (MsgRemoteFailed) sealed() {}
