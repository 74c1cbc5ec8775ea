package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyID        = "id"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Query and path parameter names
const (
	ParamID     = "id"
	QueryUserID = "user_id"
)

// Response messages
const (
	MsgCreated            = "Successful"
	MsgUserUpdated        = "User update is successful!"
	MsgUserDeleted        = "User and associated tasks have been deleted successfully!"
	MsgTaskUpdated        = "Task update is successful!"
	MsgTaskDeleted        = "Task has been deleted successfully!"
	MsgUserNotFound       = "User was not found"
	MsgTaskNotFound       = "Task was not found"
	MsgNoTasksForUser     = "No tasks found for this user"
	MsgInvalidRequestBody = "Invalid request body"
)
