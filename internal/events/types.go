package events

// AuditTopic carries one event per committed mutation and auth transition.
const AuditTopic = "notes.audit"

const (
	UserRegistered      = "USER_REGISTERED"
	UserProfileUpdated  = "USER_PROFILE_UPDATED"
	UserPasswordChanged = "USER_PASSWORD_CHANGED"
	UserDeleted         = "USER_DELETED"

	FolderCreated = "FOLDER_CREATED"
	FolderDeleted = "FOLDER_DELETED"
	NoteCreated   = "NOTE_CREATED"
	NoteDeleted   = "NOTE_DELETED"
)

const (
	EntityUser   = "user"
	EntityFolder = "folder"
	EntityNote   = "note"
)
