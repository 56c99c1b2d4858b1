package models

// Role is an admin-managed role record.
type Role struct {
	RoleID   uint   `json:"role_id"`
	RoleName string `json:"role_name"`
}

// User is an admin-managed user record.
type User struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	RoleID   uint   `json:"role_id"`
	IsActive bool   `json:"is_active"`
	Role     Role   `json:"role"`
}

// Concept is a categorization tag for movements.
type Concept struct {
	ConceptID               uint   `json:"concept_id"`
	ConceptName             string `json:"concept_name"`
	MovementTypeAssociation string `json:"movement_type_association"`
	IsActive                bool   `json:"is_active"`
}

// Profile is the authenticated user as returned by GET /api/me.
type Profile struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// DisplayName returns the best label for the profile.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
