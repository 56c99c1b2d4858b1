package api

import (
	"context"
	"fmt"

	"github.com/cajafuerte/arqueo/internal/models"
)

// Me returns the authenticated user (GET /api/me).
func (c *Client) Me(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.getJSON(ctx, "/api/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListUsuarios lists all users (GET /api/admin/usuarios).
func (c *Client) ListUsuarios(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/api/admin/usuarios", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserRequest carries the editable user fields.
type UserRequest struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name"`
	RoleID   uint   `json:"role_id"`
	IsActive bool   `json:"is_active"`
}

// CreateUsuario creates a user (POST /api/admin/usuarios).
func (c *Client) CreateUsuario(ctx context.Context, req UserRequest) error {
	return c.postJSON(ctx, "/api/admin/usuarios", req, nil)
}

// UpdateUsuario updates a user (PUT /api/admin/usuarios/:id).
func (c *Client) UpdateUsuario(ctx context.Context, id uint, req UserRequest) error {
	return c.putJSON(ctx, fmt.Sprintf("/api/admin/usuarios/%d", id), req, nil)
}

// DeleteUsuario removes a user (DELETE /api/admin/usuarios/:id).
func (c *Client) DeleteUsuario(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/usuarios/%d", id))
}

// ResetPassword resets a user's password
// (POST /api/admin/usuarios/:id/reset-password) and returns whatever
// temporary credential the server includes in the response.
func (c *Client) ResetPassword(ctx context.Context, id uint) (string, error) {
	var resp struct {
		TempPassword string `json:"temp_password"`
		Message      string `json:"message"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/api/admin/usuarios/%d/reset-password", id), nil, &resp); err != nil {
		return "", err
	}
	if resp.TempPassword != "" {
		return resp.TempPassword, nil
	}
	return resp.Message, nil
}

// ListRoles lists all roles (GET /api/admin/roles).
func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := c.getJSON(ctx, "/api/admin/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole creates a role (POST /api/admin/roles).
func (c *Client) CreateRole(ctx context.Context, roleName string) error {
	return c.postJSON(ctx, "/api/admin/roles", map[string]string{"role_name": roleName}, nil)
}

// UpdateRole renames a role (PUT /api/admin/roles/:id).
func (c *Client) UpdateRole(ctx context.Context, id uint, roleName string) error {
	return c.putJSON(ctx, fmt.Sprintf("/api/admin/roles/%d", id), map[string]string{"role_name": roleName}, nil)
}

// DeleteRole removes a role (DELETE /api/admin/roles/:id).
func (c *Client) DeleteRole(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/roles/%d", id))
}

// ListConceptos lists all concepts (GET /api/admin/conceptos).
func (c *Client) ListConceptos(ctx context.Context) ([]models.Concept, error) {
	var concepts []models.Concept
	if err := c.getJSON(ctx, "/api/admin/conceptos", nil, &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

// ConceptRequest carries the editable concept fields.
type ConceptRequest struct {
	ConceptName             string `json:"concept_name"`
	MovementTypeAssociation string `json:"movement_type_association"`
	IsActive                bool   `json:"is_active"`
}

// CreateConcepto creates a concept (POST /api/admin/conceptos).
func (c *Client) CreateConcepto(ctx context.Context, req ConceptRequest) error {
	return c.postJSON(ctx, "/api/admin/conceptos", req, nil)
}

// UpdateConcepto updates a concept (PUT /api/admin/conceptos/:id).
func (c *Client) UpdateConcepto(ctx context.Context, id uint, req ConceptRequest) error {
	return c.putJSON(ctx, fmt.Sprintf("/api/admin/conceptos/%d", id), req, nil)
}

// DeleteConcepto removes a concept (DELETE /api/admin/conceptos/:id).
func (c *Client) DeleteConcepto(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/conceptos/%d", id))
}
