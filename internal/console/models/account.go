package models

// Role is the access level of an account.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleViewer Role = "Viewer"
)

// Status tells whether an account may log in.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Account is one administrative user record as seen by the console.
// ID is always a positive integer: records coming from the store pass
// through the normalizer before they are handed out.
type Account struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AccountInput carries the editable fields of an account, as collected
// from the create/edit form. Identity and timestamps are assigned by the
// mutation coordinator.
type AccountInput struct {
	FullName string
	Email    string
	Phone    string
	Role     Role
	Status   Status
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleViewer
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusInactive
}
