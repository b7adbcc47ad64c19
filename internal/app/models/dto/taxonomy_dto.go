package dto

// CourseResponse is the transport shape of a course.
type CourseResponse struct {
	UID  string `json:"uid"`
	Name string `json:"name" example:"CS101"`
}

// SubjectResponse is the transport shape of a subject, with its parent
// course flattened to the course uid (empty when unattached).
type SubjectResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name" example:"Algorithms"`
	CourseUID string `json:"course,omitempty"`
}

// SessionResponse is the transport shape of a session.
type SessionResponse struct {
	UID  string `json:"uid"`
	Name string `json:"name" example:"2023-24"`
}

// CreateCourseRequest creates a new course.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSubjectRequest creates a new subject, optionally attached to a
// course by uid.
type CreateSubjectRequest struct {
	Name      string `json:"name" binding:"required"`
	CourseUID string `json:"course,omitempty"`
}

// CreateSessionRequest creates a new session.
type CreateSessionRequest struct {
	Name string `json:"name" binding:"required"`
}

// ChoicesResponse exposes the closed enumerations so upload forms can be
// rendered without hardcoding them client-side.
type ChoicesResponse struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
	Semesters  []string `json:"semesters"`
}
