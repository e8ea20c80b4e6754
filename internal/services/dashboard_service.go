package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

// UpcomingLimit caps the upcoming-deadlines view.
const UpcomingLimit = 5

// DefaultUpcomingHorizonDays is the look-ahead window when the caller does
// not specify one.
const DefaultUpcomingHorizonDays = 7

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *dashboardService) Overview(ctx context.Context, actor *models.User, now time.Time) (*DashboardOverviewResponse, error) {
	tasks, err := s.visibleTasks(ctx, actor)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return &DashboardOverviewResponse{
		TotalTasks:     len(tasks),
		CompletedTasks: completed,
		OverdueTasks:   len(Overdue(tasks, now)),
		Progress:       Progress(tasks),
		ByCategory:     ByCategory(tasks),
		ByPriority:     ByPriority(tasks),
		Upcoming:       Upcoming(tasks, now, DefaultUpcomingHorizonDays),
	}, nil
}

func (s *dashboardService) Overdue(ctx context.Context, actor *models.User, now time.Time) ([]*models.Task, error) {
	tasks, err := s.visibleTasks(ctx, actor)
	if err != nil {
		return nil, err
	}
	return Overdue(tasks, now), nil
}

func (s *dashboardService) Upcoming(ctx context.Context, actor *models.User, now time.Time, horizonDays int) ([]*models.Task, error) {
	tasks, err := s.visibleTasks(ctx, actor)
	if err != nil {
		return nil, err
	}
	if horizonDays <= 0 {
		horizonDays = DefaultUpcomingHorizonDays
	}
	return Upcoming(tasks, now, horizonDays), nil
}

func (s *dashboardService) CalendarDay(ctx context.Context, actor *models.User, date time.Time) ([]*models.Task, error) {
	tasks, err := s.visibleTasks(ctx, actor)
	if err != nil {
		return nil, err
	}
	return TasksOnDate(tasks, date), nil
}

func (s *dashboardService) visibleTasks(ctx context.Context, actor *models.User) ([]*models.Task, error) {
	tasks, err := s.repo.Tasks().List(ctx, actor, repositories.TaskFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ===== DERIVED VIEWS =====
//
// Pure functions over a task slice. Derived views are recomputed on every
// call; nothing here caches.

// ByCategory counts tasks per category. Categories with no tasks are absent
// from the map.
func ByCategory(tasks []*models.Task) map[models.TaskCategory]int {
	counts := make(map[models.TaskCategory]int)
	for _, t := range tasks {
		counts[t.Category]++
	}
	return counts
}

// ByPriority counts tasks per priority level.
func ByPriority(tasks []*models.Task) map[models.Priority]int {
	counts := make(map[models.Priority]int)
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// Overdue returns incomplete tasks whose due date is strictly before now.
// Completing a task removes it from this view immediately.
func Overdue(tasks []*models.Task, now time.Time) []*models.Task {
	out := make([]*models.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns incomplete tasks due within horizonDays from now,
// soonest first, capped at UpcomingLimit.
func Upcoming(tasks []*models.Task, now time.Time, horizonDays int) []*models.Task {
	horizon := now.AddDate(0, 0, horizonDays)

	out := make([]*models.Task, 0)
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.DueDate.Before(now) || t.DueDate.After(horizon) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})

	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}

// Progress reports completion as a percentage clamped to [0, 100]. An empty
// task list reports zero rather than dividing by zero.
func Progress(tasks []*models.Task) ProgressResponse {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return ProgressResponse{
		CompletedCount: completed,
		TotalCount:     total,
		Percentage:     pct,
	}
}

// TasksOnDate returns tasks due on the same calendar day as date, compared
// in date's location. A task due 23:59 and one due 00:01 the next day land
// on different days.
func TasksOnDate(tasks []*models.Task, date time.Time) []*models.Task {
	y, m, d := date.Date()

	out := make([]*models.Task, 0)
	for _, t := range tasks {
		ty, tm, td := t.DueDate.In(date.Location()).Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}
