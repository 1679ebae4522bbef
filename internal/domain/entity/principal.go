package entity

// Staff roles allowed to read any record. Role ST (student) may only read
// its own records.
const (
	RoleStudent = "ST"
	RoleAdmin   = "AD"
	RoleDean    = "DE"
	RoleRector  = "PR"
	RoleStudy   = "SR"
	RoleAdvisor = "SP"
	RoleTeacher = "VY"
	RoleHead    = "VK"
)

var staffRoles = map[string]struct{}{
	RoleAdmin:   {},
	RoleDean:    {},
	RoleRector:  {},
	RoleStudy:   {},
	RoleAdvisor: {},
	RoleTeacher: {},
	RoleHead:    {},
}

// Principal is the identity asserted by the gateway headers. It lives only
// for the duration of one request.
type Principal struct {
	StudentID string
	TeacherID string
	Email     string
	Roles     []string
}

// SubjectName returns the identifier used for audit logging: teacher id
// first, then student id, then email.
func (p Principal) SubjectName() string {
	if p.TeacherID != "" {
		return p.TeacherID
	}
	if p.StudentID != "" {
		return p.StudentID
	}
	return p.Email
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether any of the principal's roles grants unrestricted
// read access.
func (p Principal) IsStaff() bool {
	for _, r := range p.Roles {
		if _, ok := staffRoles[r]; ok {
			return true
		}
	}
	return false
}
