package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportTasks(ctx context.Context, actor *models.User) ([]byte, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "tasks", "export", "admin role required")
	}

	tasks, err := s.repo.Tasks().List(ctx, actor, repositories.TaskFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	rows := make([][]interface{}, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []interface{}{
			t.ID, t.Title, t.Description, string(t.Category), string(t.Priority),
			t.DueDate.Format(time.RFC3339), t.Completed, t.UserID,
			t.CreatedAt.Format(time.RFC3339),
		})
	}

	header := []interface{}{"ID", "Title", "Description", "Category", "Priority", "Due Date", "Completed", "User ID", "Created At"}
	data, err := writeSheet("Tasks", header, rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Exported tasks", "count", len(tasks), "actor_id", actor.ID)
	return data, nil
}

func (s *exportService) ExportUsers(ctx context.Context, actor *models.User) ([]byte, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "users", "export", "admin role required")
	}

	users, err := s.repo.Users().List(ctx, repositories.UserFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	// Passwords never leave the store via export.
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{
			u.ID, u.Name, u.Email, string(u.Role), u.CreatedAt.Format(time.RFC3339),
		})
	}

	header := []interface{}{"ID", "Name", "Email", "Role", "Created At"}
	data, err := writeSheet("Users", header, rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Exported users", "count", len(users), "actor_id", actor.ID)
	return data, nil
}

func (s *exportService) ExportActivityLog(ctx context.Context, actor *models.User) ([]byte, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "activity_log", "export", "admin role required")
	}

	entries, err := s.repo.Logs().List(ctx, repositories.LogFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.ID, e.UserEmail, e.Action, e.Details, e.IPAddress,
			e.Timestamp.Format(time.RFC3339),
		})
	}

	header := []interface{}{"ID", "User", "Action", "Details", "IP Address", "Timestamp"}
	data, err := writeSheet("Activity Log", header, rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Exported activity log", "count", len(entries), "actor_id", actor.ID)
	return data, nil
}

func writeSheet(sheet string, header []interface{}, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell: %w", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
