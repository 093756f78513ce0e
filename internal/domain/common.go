package domain

// User holds the claims of the authenticated user.
type User struct {
	Id    int64
	Email string
}

// Notice is a transient, auto-dismissing user-visible message.
type Notice struct {
	Id    string
	Level string // "success" or "error"
	Title string
}

// CommonTemplateData holds fields common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	User    *User
	Notices []Notice
}
