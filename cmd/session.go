/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavansurya09/StudyMate/config"
	"github.com/pavansurya09/StudyMate/internal/guard"
	"github.com/pavansurya09/StudyMate/internal/session"
	"github.com/pavansurya09/StudyMate/internal/store"
)

// sessionCmd groups the local-session demo commands. The session token is
// persisted to TOKEN_FILE, so whoami and logout work across runs.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and manage the local demo session",
}

var sessionLoginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in against the seeded demo accounts and persist the token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newSessionController()
		if err != nil {
			return err
		}
		user, err := ctrl.Login(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var sessionWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session state and view access",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newSessionController()
		if err != nil {
			return err
		}
		user, ok := ctrl.CurrentUser()
		if !ok {
			fmt.Println("anonymous")
			return nil
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
		fmt.Printf("dashboard: %s\n", guard.RequireAuth(ctrl))
		fmt.Printf("admin views: %s\n", guard.RequireAdmin(ctrl))
		return nil
	},
}

var sessionLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newSessionController()
		if err != nil {
			return err
		}
		ctrl.Logout()
		fmt.Println("logged out")
		return nil
	},
}

func newSessionController() (*session.Controller, error) {
	cfg := config.LoadConfig()

	users := store.NewUserRepository(store.DomainRolePolicy(cfg.AdminDomain))
	if cfg.SeedDemo {
		groups := store.NewStudyGroupRepository()
		events := store.NewEventRepository()
		if err := store.SeedDemoData(users, groups, events); err != nil {
			return nil, err
		}
	}

	return session.NewController(users, session.NewFileStorage(cfg.TokenFile), nil)
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLoginCmd)
	sessionCmd.AddCommand(sessionWhoamiCmd)
	sessionCmd.AddCommand(sessionLogoutCmd)
}
