package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage users, roles and concepts",
	Long: `Administration of the catalog entities behind cash sessions: the users
who operate them, the roles those users hold and the movement concepts
available when recording entries.

Requires an account with administrative permissions on the server.`,
}

// --- usuarios ---

var adminUsersCmd = &cobra.Command{
	Use:     "usuarios",
	Aliases: []string{"users"},
	Short:   "List users",
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		users, err := client.ListUsuarios(ctx)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		if len(users) == 0 {
			fmt.Println("No hay usuarios.")
			return
		}
		fmt.Printf("%-5s %-30s %-25s %-15s %s\n", "ID", "Email", "Nombre", "Rol", "Activo")
		for _, u := range users {
			fmt.Printf("%-5d %-30s %-25s %-15s %s\n",
				u.UserID, u.Email, u.FullName, u.Role.RoleName, activeMark(u.IsActive))
		}
	},
}

var adminUserAddCmd = &cobra.Command{
	Use:   "add [email] [full name]",
	Short: "Create a user",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		roleID, _ := cmd.Flags().GetUint("rol")
		req := api.UserRequest{
			Email:    args[0],
			FullName: strings.Join(args[1:], " "),
			RoleID:   roleID,
			IsActive: true,
		}
		if err := client.CreateUsuario(ctx, req); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Usuario %s creado.\n", req.Email)
	},
}

var adminUserEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a user's name, role or active flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		current, err := findUser(ctx, client, id)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		req := api.UserRequest{
			FullName: current.FullName,
			RoleID:   current.RoleID,
			IsActive: current.IsActive,
		}
		if v, _ := cmd.Flags().GetString("nombre"); v != "" {
			req.FullName = v
		}
		if cmd.Flags().Changed("rol") {
			req.RoleID, _ = cmd.Flags().GetUint("rol")
		}
		if cmd.Flags().Changed("activo") {
			req.IsActive, _ = cmd.Flags().GetBool("activo")
		}

		if err := client.UpdateUsuario(ctx, id, req); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Usuario #%d actualizado.\n", id)
	},
}

var adminUserRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("¿Eliminar el usuario #%d?", id)) {
			fmt.Println("Operación cancelada.")
			return
		}
		if err := client.DeleteUsuario(ctx, id); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Usuario #%d eliminado.\n", id)
	},
}

var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password [id]",
	Short: "Reset a user's password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		result, err := client.ResetPassword(ctx, id)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Contraseña restablecida: %s\n", result)
	},
}

// --- roles ---

var adminRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles",
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		roles, err := client.ListRoles(ctx)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		if len(roles) == 0 {
			fmt.Println("No hay roles.")
			return
		}
		fmt.Printf("%-5s %s\n", "ID", "Nombre")
		for _, r := range roles {
			fmt.Printf("%-5d %s\n", r.RoleID, r.RoleName)
		}
	},
}

var adminRoleAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a role",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		name := strings.Join(args, " ")
		if err := client.CreateRole(ctx, name); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Rol %q creado.\n", name)
	},
}

var adminRoleEditCmd = &cobra.Command{
	Use:   "edit [id] [new name]",
	Short: "Rename a role",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		name := strings.Join(args[1:], " ")
		if err := client.UpdateRole(ctx, id, name); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Rol #%d renombrado a %q.\n", id, name)
	},
}

var adminRoleRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a role",
	Long: `Delete a role. Refused when any user still holds the role; reassign
those users first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		// Deleting a role in use would strand its users, so count first.
		users, err := client.ListUsuarios(ctx)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		assigned := 0
		for _, u := range users {
			if u.RoleID == id {
				assigned++
			}
		}
		if assigned > 0 {
			fmt.Printf("❌ No se puede eliminar el rol #%d: %d usuario(s) lo tienen asignado.\n", id, assigned)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("¿Eliminar el rol #%d?", id)) {
			fmt.Println("Operación cancelada.")
			return
		}
		if err := client.DeleteRole(ctx, id); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Rol #%d eliminado.\n", id)
	},
}

// --- conceptos ---

var adminConceptsCmd = &cobra.Command{
	Use:     "conceptos",
	Aliases: []string{"concepts"},
	Short:   "List movement concepts",
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		concepts, err := client.ListConceptos(ctx)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		if len(concepts) == 0 {
			fmt.Println("No hay conceptos.")
			return
		}
		fmt.Printf("%-5s %-30s %-10s %s\n", "ID", "Nombre", "Tipo", "Activo")
		for _, c := range concepts {
			fmt.Printf("%-5d %-30s %-10s %s\n",
				c.ConceptID, c.ConceptName, c.MovementTypeAssociation, activeMark(c.IsActive))
		}
	},
}

var adminConceptAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a concept",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		tipo, _ := cmd.Flags().GetString("tipo")
		req := api.ConceptRequest{
			ConceptName:             strings.Join(args, " "),
			MovementTypeAssociation: tipo,
			IsActive:                true,
		}
		if err := client.CreateConcepto(ctx, req); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Concepto %q creado.\n", req.ConceptName)
	},
}

var adminConceptEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a concept's name, type or active flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		current, err := findConcept(ctx, client, id)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		req := api.ConceptRequest{
			ConceptName:             current.ConceptName,
			MovementTypeAssociation: current.MovementTypeAssociation,
			IsActive:                current.IsActive,
		}
		if v, _ := cmd.Flags().GetString("nombre"); v != "" {
			req.ConceptName = v
		}
		if cmd.Flags().Changed("tipo") {
			req.MovementTypeAssociation, _ = cmd.Flags().GetString("tipo")
		}
		if cmd.Flags().Changed("activo") {
			req.IsActive, _ = cmd.Flags().GetBool("activo")
		}

		if err := client.UpdateConcepto(ctx, id, req); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Concepto #%d actualizado.\n", id)
	},
}

var adminConceptRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a concept",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("¿Eliminar el concepto #%d?", id)) {
			fmt.Println("Operación cancelada.")
			return
		}
		if err := client.DeleteConcepto(ctx, id); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Concepto #%d eliminado.\n", id)
	},
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("identificador inválido: %s", s)
	}
	return uint(n), nil
}

func findUser(ctx context.Context, client *api.Client, id uint) (*models.User, error) {
	users, err := client.ListUsuarios(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("no existe el usuario #%d", id)
}

func findConcept(ctx context.Context, client *api.Client, id uint) (*models.Concept, error) {
	concepts, err := client.ListConceptos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range concepts {
		if concepts[i].ConceptID == id {
			return &concepts[i], nil
		}
	}
	return nil, fmt.Errorf("no existe el concepto #%d", id)
}

func activeMark(active bool) string {
	if active {
		return "sí"
	}
	return "no"
}

func init() {
	adminUserAddCmd.Flags().Uint("rol", 0, "Role id for the new user")
	adminUserEditCmd.Flags().String("nombre", "", "New full name")
	adminUserEditCmd.Flags().Uint("rol", 0, "New role id")
	adminUserEditCmd.Flags().Bool("activo", true, "Active flag")
	adminUserRmCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	adminUsersCmd.AddCommand(adminUserAddCmd, adminUserEditCmd, adminUserRmCmd, adminResetPasswordCmd)

	adminRoleRmCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	adminRolesCmd.AddCommand(adminRoleAddCmd, adminRoleEditCmd, adminRoleRmCmd)

	adminConceptAddCmd.Flags().String("tipo", "Ingreso", "Associated movement type (Ingreso/Egreso)")
	adminConceptEditCmd.Flags().String("nombre", "", "New concept name")
	adminConceptEditCmd.Flags().String("tipo", "", "New associated movement type")
	adminConceptEditCmd.Flags().Bool("activo", true, "Active flag")
	adminConceptRmCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	adminConceptsCmd.AddCommand(adminConceptAddCmd, adminConceptEditCmd, adminConceptRmCmd)

	adminCmd.AddCommand(adminUsersCmd, adminRolesCmd, adminConceptsCmd)
}
