package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/api"
	"github.com/noah-isme/sdms-portal/internal/forms"
	"github.com/noah-isme/sdms-portal/internal/menu"
	"github.com/noah-isme/sdms-portal/internal/metrics"
	"github.com/noah-isme/sdms-portal/internal/models"
	"github.com/noah-isme/sdms-portal/internal/router"
	"github.com/noah-isme/sdms-portal/internal/session"
	"github.com/noah-isme/sdms-portal/pkg/config"
	"github.com/noah-isme/sdms-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	collector := metrics.NewCollector()
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", collector.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logr.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	client := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logr,
		Metrics: collector,
	})
	sessions := session.NewStore(cfg.Session.File, logr)
	app := router.NewApp(router.Params{Client: client, Sessions: sessions, Logger: logr})
	app.Start()

	shell := &shell{app: app, cfg: cfg, out: os.Stdout}
	shell.run(context.Background(), bufio.NewScanner(os.Stdin))
}

// shell is a line-oriented driver over the app core. All portal logic lives
// in the internal packages; this only parses commands and prints state.
type shell struct {
	app *router.App
	cfg *config.Config
	out *os.File
}

func (s *shell) run(ctx context.Context, in *bufio.Scanner) {
	s.render(ctx)
	for {
		fmt.Fprint(s.out, "> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		s.dispatch(ctx, fields[0], fields[1:])
		s.render(ctx)
	}
}

func (s *shell) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "login":
		s.login(ctx, args)
	case "token":
		s.tokenLogin(ctx, args)
	case "logout":
		s.app.Logout()
	case "home":
		s.app.HomeClicked()
	case "open":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: open <section>")
			return
		}
		if err := s.app.SetSection(args[0]); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.loadSection(ctx)
	case "search":
		s.withList(func(content router.Content) {
			content.List.Search(strings.Join(args, " "))
		})
	case "page":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: page <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.out, "usage: page <n>")
			return
		}
		s.withList(func(content router.Content) { content.List.SetPage(n) })
	case "refresh":
		s.loadSection(ctx)
	case "add":
		s.add(ctx, args)
	case "edit":
		s.edit(ctx, args)
	case "mark":
		s.markAttendance(ctx, args)
	case "marks":
		s.submitResults(ctx, args)
	case "delete":
		s.stageDelete(args)
	case "confirm":
		s.withList(func(content router.Content) {
			if err := content.List.ConfirmDelete(ctx); err != nil {
				fmt.Fprintln(s.out, "delete failed:", err)
			}
		})
	case "cancel":
		s.withList(func(content router.Content) { content.List.CancelDelete() })
	case "export":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: export csv|pdf")
			return
		}
		s.export(args[0])
	case "return":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: return <issue_id>")
			return
		}
		if err := s.app.ReturnBook(ctx, args[0]); err != nil {
			fmt.Fprintln(s.out, "return failed:", err)
		}
	default:
		fmt.Fprintln(s.out, "commands: login token logout home open search page refresh add edit mark marks delete confirm cancel export return quit")
	}
}

// fields parses key=value arguments into a map.
func fields(args []string) map[string]string {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if ok {
			out[key] = value
		}
	}
	return out
}

func (s *shell) add(ctx context.Context, args []string) {
	values := fields(args)
	var err error
	switch s.app.ActiveSection() {
	case menu.SectionAdmins:
		err = s.app.AddAdmin(ctx, forms.AdminForm{
			Name:     values["name"],
			Username: values["username"],
			DOB:      values["dob"],
		})
	case menu.SectionFaculty:
		err = s.app.AddFaculty(ctx, forms.FacultyForm{
			Name:       values["name"],
			Department: values["department"],
			Subject:    values["subject"],
			DOB:        values["dob"],
		})
	case menu.SectionStudents:
		err = s.app.AddStudent(ctx, forms.StudentForm{
			Name:       values["name"],
			RollNo:     values["roll_no"],
			Department: values["department"],
			Semester:   values["semester"],
			DOB:        values["dob"],
		})
	default:
		fmt.Fprintln(s.out, "open the admins, faculty, or students section to add")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "add failed:", err)
	}
}

func (s *shell) edit(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "usage: edit <id> key=value ...")
		return
	}
	id := args[0]
	values := fields(args[1:])
	record := models.Record{}
	for key, value := range values {
		record[key] = value
	}
	s.withList(func(content router.Content) {
		idField := content.List.Columns()[0]
		for _, row := range content.List.Rows() {
			if row.ID(idField) == id {
				if err := content.List.SubmitEdit(ctx, row, record); err != nil {
					fmt.Fprintln(s.out, "edit failed:", err)
				}
				return
			}
		}
		fmt.Fprintln(s.out, "no visible row with id", id)
	})
}

func (s *shell) markAttendance(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "usage: mark <subject> <date> <student_id>=<Present|Absent> ...")
		return
	}
	sheet := forms.AttendanceSheet{Subject: args[0], Date: args[1], StatusMap: fields(args[2:])}
	if err := s.app.MarkAttendance(ctx, sheet); err != nil {
		fmt.Fprintln(s.out, "attendance failed:", err)
		return
	}
	fmt.Fprintf(s.out, "attendance saved for %s on %s (%d students)\n", sheet.Subject, sheet.Date, len(sheet.StatusMap))
}

func (s *shell) submitResults(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "usage: marks <subject> <exam_type> <student_id>=<marks> ...")
		return
	}
	sheet := forms.ResultSheet{Subject: args[0], ExamType: args[1], MarksMap: fields(args[2:])}
	if err := s.app.SubmitResults(ctx, sheet); err != nil {
		fmt.Fprintln(s.out, "results failed:", err)
		return
	}
	fmt.Fprintf(s.out, "results saved for %s %s (%d students)\n", sheet.Subject, sheet.ExamType, len(sheet.MarksMap))
}

func (s *shell) login(ctx context.Context, args []string) {
	if s.app.Stage() == router.StageHome {
		s.app.LoginClicked()
	}
	if len(args) != 3 {
		fmt.Fprintln(s.out, "usage: login <role> <id> <password>")
		return
	}
	_, err := s.app.Login(ctx, api.LoginRequest{
		Role:     models.Role(args[0]),
		ID:       args[1],
		Password: args[2],
	})
	if err != nil {
		fmt.Fprintln(s.out, "login failed:", err)
		return
	}
	s.loadSection(ctx)
}

func (s *shell) tokenLogin(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: token <jwt>")
		return
	}
	if identity, ok := session.PeekToken(args[0]); ok && identity.Email != "" {
		fmt.Fprintln(s.out, "signing in as", identity.Email)
	}
	if _, err := s.app.Login(ctx, api.LoginRequest{Token: args[0]}); err != nil {
		fmt.Fprintln(s.out, "login failed:", err)
		return
	}
	s.loadSection(ctx)
}

func (s *shell) loadSection(ctx context.Context) {
	sess := s.app.Session()
	if sess == nil {
		return
	}
	content, err := s.app.Content()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	switch content.Kind {
	case router.ContentOverview:
		if _, err := s.app.Stats().Fetch(ctx, sess.Role, sess.ID); err != nil {
			fmt.Fprintln(s.out, "stats failed (refresh to retry):", err)
		}
	case router.ContentList:
		if err := content.List.Load(ctx); err != nil {
			fmt.Fprintln(s.out, "load failed (refresh to retry):", err)
		}
	case router.ContentProfile:
		profile, err := s.app.Profile(ctx)
		if err != nil {
			fmt.Fprintln(s.out, "profile failed:", err)
			return
		}
		for _, field := range []string{"student_id", "name", "roll_no", "department", "semester", "dob"} {
			fmt.Fprintf(s.out, "  %-12s %s\n", field, profile.String(field))
		}
	}
}

func (s *shell) withList(fn func(router.Content)) {
	content, err := s.app.Content()
	if err != nil || content.Kind != router.ContentList {
		fmt.Fprintln(s.out, "no list open")
		return
	}
	fn(content)
}

func (s *shell) stageDelete(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: delete <id>")
		return
	}
	s.withList(func(content router.Content) {
		for _, row := range content.List.Rows() {
			if row.ID(content.List.Columns()[0]) == args[0] {
				content.List.RequestDelete(row)
				fmt.Fprintln(s.out, "confirm deletion of", args[0], "with 'confirm' (or 'cancel')")
				return
			}
		}
		fmt.Fprintln(s.out, "no visible row with id", args[0])
	})
}

func (s *shell) export(format string) {
	s.withList(func(content router.Content) {
		payload, ext, err := content.List.Export(format)
		if err != nil {
			fmt.Fprintln(s.out, "export failed:", err)
			return
		}
		if err := os.MkdirAll(s.cfg.Export.Dir, 0o755); err != nil {
			fmt.Fprintln(s.out, "export failed:", err)
			return
		}
		name := strings.ToLower(strings.ReplaceAll(content.List.Title(), " ", "_")) + "." + ext
		path := filepath.Join(s.cfg.Export.Dir, name)
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			fmt.Fprintln(s.out, "export failed:", err)
			return
		}
		fmt.Fprintln(s.out, "wrote", path)
	})
}

func (s *shell) render(ctx context.Context) {
	switch s.app.Stage() {
	case router.StageHome:
		fmt.Fprintln(s.out, "SDMS Portal — 'login <role> <id> <password>' or 'token <jwt>' to sign in")
	case router.StageAuth:
		fmt.Fprintln(s.out, "Sign in — 'login <role> <id> <password>' or 'token <jwt>'")
	case router.StageDashboard:
		s.renderDashboard()
	}
}

func (s *shell) renderDashboard() {
	sess := s.app.Session()
	if sess == nil {
		return
	}
	fmt.Fprintf(s.out, "[%s %s] sections:", sess.Role, sess.ID)
	for _, entry := range s.app.Menu() {
		marker := " "
		if entry.Key == s.app.ActiveSection() {
			marker = "*"
		}
		fmt.Fprintf(s.out, " %s%s", marker, entry.Key)
	}
	fmt.Fprintln(s.out)

	content, err := s.app.Content()
	if err != nil {
		return
	}
	switch content.Kind {
	case router.ContentOverview:
		s.renderOverview()
	case router.ContentList:
		s.renderList(content)
	case router.ContentStatic:
		fmt.Fprintln(s.out, content.Text)
	case router.ContentAttendanceForm:
		fmt.Fprintln(s.out, "mark <subject> <date> <student_id>=<Present|Absent> ...")
	case router.ContentResultsForm:
		fmt.Fprintln(s.out, "marks <subject> <exam_type> <student_id>=<marks> ...")
	}
}

func (s *shell) renderOverview() {
	overview, err, loading := s.app.Stats().Snapshot()
	if loading {
		fmt.Fprintln(s.out, "loading stats...")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "stats unavailable:", err, "— 'refresh' to retry")
		return
	}
	if overview == nil {
		return
	}
	for _, tile := range overview.Tiles {
		fmt.Fprintf(s.out, "  %-18s %s\n", tile.Label, tile.Value)
	}
}

func (s *shell) renderList(content router.Content) {
	view := content.List
	if view.Loading() {
		fmt.Fprintln(s.out, "loading...")
		return
	}
	if err := view.Err(); err != nil {
		fmt.Fprintln(s.out, "load failed:", err, "— 'refresh' to retry")
		return
	}
	rows := view.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(s.out, view.Placeholder())
		return
	}
	fmt.Fprintln(s.out, strings.Join(view.Columns(), " | "))
	for _, row := range rows {
		values := make([]string, 0, len(view.Columns()))
		for _, col := range view.Columns() {
			values = append(values, row.String(col))
		}
		fmt.Fprintln(s.out, strings.Join(values, " | "))
	}
	fmt.Fprintf(s.out, "page %d of %d (%d rows)\n", view.Page(), view.TotalPages(), view.FilteredTotal())
}
