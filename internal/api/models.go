package api

// Common request/response structures

// GenerateTokenRequest defines the payload for the token issuing endpoint.
// Extra fields in the body are accepted and ignored; only email is encoded
// into the token.
type GenerateTokenRequest struct {
	Email string `json:"email" validate:"required"`
}

// TokenResponse defines the successful response for the token issuing
// endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest defines the payload for user registration. Password and
// image are both optional; social-login users register with an image and no
// password.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// CreateUserResponse defines the registration response. Result is omitted
// on the duplicate-email path, where only the message survives.
type CreateUserResponse struct {
	Result  interface{} `json:"result,omitempty"`
	Message string      `json:"message"`
}

// CreateBoardRequest defines the payload for board creation. The ID is
// caller-supplied, not generated.
type CreateBoardRequest struct {
	ID        string `json:"id"`
	BoardName string `json:"boardName"`
	UID       string `json:"uid"`
}

// CreateTaskRequest defines the payload for single task creation. The
// server generates the task ID.
type CreateTaskRequest struct {
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category"`
	UID         string `json:"uId"   validate:"required"`
}

// AddTaskResponse defines the successful response for task creation.
type AddTaskResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// UpdateTaskRequest defines the payload for the full task update. All
// fields overwrite the stored row, including category.
type UpdateTaskRequest struct {
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Category    string `json:"category"`
}

// BulkTask is one element of the bulk replacement payload. The owner ID in
// the URL path wins over anything the element carries.
type BulkTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

// BulkReplaceRequest defines the payload for the bulk task replacement
// endpoint.
type BulkReplaceRequest struct {
	NewTasks []BulkTask `json:"newTasks"`
}
