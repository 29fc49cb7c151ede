package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/confirm"
	"traveldesk/internal/console/listview"
	"traveldesk/internal/console/models"
	"traveldesk/internal/console/services"
)

// Accounts runs the account list screen: a fresh view over the collection,
// reloaded after every successful mutation.
func (a *App) Accounts(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.toasts.Error("Please log in first")
		return nil
	}

	view := listview.New(listview.AccountSchema())
	defer view.Close()

	if !a.reloadAccounts(ctx, view) {
		return nil
	}

	for {
		renderAccountsPage(a.out, view.Derive(), view.Criteria())

		line, err := GetSimpleText(a.reader, "accounts (help for commands)", a.out)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "search <text> | role <v> | status <v> | sort <field> | page <n> | next | prev")
			fmt.Fprintln(a.out, "view <id> | add | edit <id> | del <id> | reload | back")

		case "search":
			view.SetSearch(strings.Join(args, " "))

		case "role", "status":
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			view.SetFilter(cmd, value)

		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort <field>")
				continue
			}
			view.SortBy(args[0])

		case "page":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			view.SetPage(n)

		case "next":
			view.SetPage(view.Criteria().Page + 1)

		case "prev":
			view.SetPage(view.Criteria().Page - 1)

		case "view":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: view <id>")
				continue
			}
			a.showAccount(ctx, args[0])

		case "add":
			if a.requireAdmin() && a.addAccount(ctx) {
				a.reloadAccounts(ctx, view)
			}

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			if a.requireAdmin() && a.editAccount(ctx, args[0]) {
				a.reloadAccounts(ctx, view)
			}

		case "del":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			if a.requireAdmin() && a.deleteAccount(ctx, args[0]) {
				a.reloadAccounts(ctx, view)
			}

		case "reload":
			a.reloadAccounts(ctx, view)

		case "back", "b":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// reloadAccounts refetches the collection under a fresh load token.
func (a *App) reloadAccounts(ctx context.Context, view *listview.View[models.Account]) bool {
	token := view.BeginLoad()
	records, err := a.accounts.List(ctx)
	if err != nil {
		a.toasts.Error("Could not load accounts: " + err.Error())
		return false
	}
	return view.ApplyLoad(token, records)
}

// requireAdmin gates mutations behind the operator's role.
func (a *App) requireAdmin() bool {
	if a.isAdmin() {
		return true
	}
	a.toasts.Error("You do not have permission to perform this action")
	return false
}

// parseID validates a caller-typed record id: a positive decimal integer.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (a *App) notifyValidation(ve services.ValidationErrors) {
	for _, fe := range ve {
		a.toasts.Error(fmt.Sprintf("%s: %s", fe.Field, fe.Msg))
	}
}

func (a *App) showAccount(ctx context.Context, raw string) {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid account id")
		sleepFn(navDelay)
		return
	}

	acct, err := a.accounts.Get(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		a.toasts.Error(fmt.Sprintf("Account %d not found", id))
		sleepFn(navDelay)
		return
	}
	if err != nil {
		a.toasts.Error("Could not load account: " + err.Error())
		return
	}
	renderAccountDetail(a.out, acct)
}

// promptAccountInput collects the editable fields, showing current values
// when editing so Enter keeps them.
func (a *App) promptAccountInput(current *models.Account) (models.AccountInput, error) {
	var in models.AccountInput
	var err error

	if current == nil {
		in.FullName, err = GetSimpleText(a.reader, "Full name", a.out)
		if err != nil {
			return in, err
		}
		in.Email, err = GetSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return in, err
		}
		in.Phone, err = GetSimpleText(a.reader, "Phone (10 digits)", a.out)
		if err != nil {
			return in, err
		}
		role, err := GetTextDefault(a.reader, "Role (Admin/Viewer)", string(models.RoleViewer), a.out)
		if err != nil {
			return in, err
		}
		status, err := GetTextDefault(a.reader, "Status (Active/Inactive)", string(models.StatusActive), a.out)
		if err != nil {
			return in, err
		}
		in.Role, in.Status = models.Role(role), models.Status(status)
		return in, nil
	}

	in.FullName, err = GetTextDefault(a.reader, "Full name", current.FullName, a.out)
	if err != nil {
		return in, err
	}
	in.Email, err = GetTextDefault(a.reader, "Email", current.Email, a.out)
	if err != nil {
		return in, err
	}
	in.Phone, err = GetTextDefault(a.reader, "Phone (10 digits)", current.Phone, a.out)
	if err != nil {
		return in, err
	}
	role, err := GetTextDefault(a.reader, "Role (Admin/Viewer)", string(current.Role), a.out)
	if err != nil {
		return in, err
	}
	status, err := GetTextDefault(a.reader, "Status (Active/Inactive)", string(current.Status), a.out)
	if err != nil {
		return in, err
	}
	in.Role, in.Status = models.Role(role), models.Status(status)
	return in, nil
}

func (a *App) addAccount(ctx context.Context) bool {
	in, err := a.promptAccountInput(nil)
	if err != nil {
		return false
	}

	acct, err := a.accounts.Create(ctx, in)
	var ve services.ValidationErrors
	if errors.As(err, &ve) {
		a.notifyValidation(ve)
		return false
	}
	if err != nil {
		a.toasts.Error("Could not create account: " + err.Error())
		return false
	}

	a.toasts.Success(fmt.Sprintf("Account %d created", acct.ID))
	sleepFn(navDelay)
	return true
}

func (a *App) editAccount(ctx context.Context, raw string) bool {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid account id")
		sleepFn(navDelay)
		return false
	}

	current, err := a.accounts.Get(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		a.toasts.Error(fmt.Sprintf("Account %d not found", id))
		sleepFn(navDelay)
		return false
	}
	if err != nil {
		a.toasts.Error("Could not load account: " + err.Error())
		return false
	}

	in, err := a.promptAccountInput(&current)
	if err != nil {
		return false
	}

	if _, err := a.accounts.Update(ctx, id, in); err != nil {
		var ve services.ValidationErrors
		if errors.As(err, &ve) {
			a.notifyValidation(ve)
			return false
		}
		a.toasts.Error("Could not update account: " + err.Error())
		return false
	}

	a.toasts.Success(fmt.Sprintf("Account %d updated", id))
	sleepFn(navDelay)
	return true
}

func (a *App) deleteAccount(ctx context.Context, raw string) bool {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid account id")
		sleepFn(navDelay)
		return false
	}

	confirmed := a.askConfirm(ctx, confirm.Options{
		Title:   "Delete account",
		Message: fmt.Sprintf("Delete account %d? This cannot be undone.", id),
	})
	if !confirmed {
		a.toasts.Info("Deletion cancelled")
		return false
	}

	if err := a.accounts.Delete(ctx, id); err != nil {
		a.toasts.Error("Could not delete account: " + err.Error())
		return false
	}
	a.toasts.Success(fmt.Sprintf("Account %d deleted", id))
	return true
}
